package flexfolio

import (
	"fmt"
	"sort"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// newYork is the exchange-local timezone of trade execution stamps.
var newYork = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
	return loc
}()

// Row is one record of an extracted table. Stamp is zero when the table is not
// time-indexed.
type Row struct {
	Stamp  time.Time
	Fields map[string]any
}

// Float returns the named field as a float64, or zero when absent or textual.
func (r Row) Float(name string) float64 {
	f, _ := r.Fields[name].(float64)
	return f
}

// String returns the named field as a string, or "" when absent or numeric.
func (r Row) String(name string) string {
	s, _ := r.Fields[name].(string)
	return s
}

// Table is a sequence of extracted records. When built with a stamp spec the
// rows are sorted ascending by stamp; otherwise they keep file order.
type Table struct {
	Rows []Row
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool { return t == nil || len(t.Rows) == 0 }

// stampSpec names the record fields a row timestamp is built from: a single
// combined field, or a date field plus a separate clock field.
type stampSpec struct {
	date  string
	clock string
}

// tables locates the record list at the jsonpath 'path' inside every selected
// section and converts it to a table per model. An absent path yields an empty
// table for that model. With a non-nil spec, row stamps are parsed in loc and
// converted to UTC, and the table is sorted ascending by stamp.
func (s *Statement) tables(sel ModelSelector, path string, spec *stampSpec, loc *time.Location) (map[string]*Table, error) {
	out := make(map[string]*Table, len(s.sections))
	for _, section := range s.selected(sel) {
		records, err := jsonpath.Get(path, any(section.tree))
		if err != nil {
			// No such record list in this model's section.
			out[section.Name] = &Table{}
			continue
		}
		table := &Table{}
		for _, record := range asList(records) {
			row := Row{Fields: record}
			if spec != nil {
				stamp, err := spec.parse(record, loc)
				if err != nil {
					return nil, parseErrorf("model %s, %s: %v", section.Name, path, err)
				}
				row.Stamp = stamp
			}
			table.Rows = append(table.Rows, row)
		}
		if spec != nil {
			sort.SliceStable(table.Rows, func(i, j int) bool {
				return table.Rows[i].Stamp.Before(table.Rows[j].Stamp)
			})
		}
		out[section.Name] = table
	}
	return out, nil
}

// stampLayouts are the date and clock forms Flex statements use, compact and
// dashed, tried in order.
var stampLayouts = []string{
	"20060102 15:04:05",
	"20060102 150405",
	"2006-01-02 15:04:05",
	"20060102",
	"2006-01-02",
}

func (spec *stampSpec) parse(record map[string]any, loc *time.Location) (time.Time, error) {
	text, _ := record[spec.date].(string)
	if spec.clock != "" {
		clock, _ := record[spec.clock].(string)
		text = text + " " + clock
	}
	for _, layout := range stampLayouts {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q in field %s", text, spec.date)
}

// Trades returns, per selected model, the trade records stamped from their
// local-exchange execution date and time.
func (s *Statement) Trades(sel ModelSelector) (map[string]*Table, error) {
	return s.tables(sel, "$.Trades.Trade", &stampSpec{date: "@tradeDate", clock: "@tradeTime"}, newYork)
}

// EquitySummary returns, per selected model, the one-per-day equity summary
// points.
func (s *Statement) EquitySummary(sel ModelSelector) (map[string]*Table, error) {
	return s.tables(sel, "$.EquitySummaryInBase.EquitySummaryByReportDateInBase", &stampSpec{date: "@reportDate"}, time.UTC)
}

// StatementOfFunds returns, per selected model, the fund activity lines.
func (s *Statement) StatementOfFunds(sel ModelSelector) (map[string]*Table, error) {
	return s.tables(sel, "$.StmtFunds.StatementOfFundsLine", &stampSpec{date: "@date"}, time.UTC)
}

// OpenPositions returns, per selected model, the open position records as of
// period end.
func (s *Statement) OpenPositions(sel ModelSelector) (map[string]*Table, error) {
	return s.tables(sel, "$.OpenPositions.OpenPosition", &stampSpec{date: "@reportDate"}, time.UTC)
}

// PriorPeriodPositions returns, per selected model, the prior period position
// records.
func (s *Statement) PriorPeriodPositions(sel ModelSelector) (map[string]*Table, error) {
	return s.tables(sel, "$.PriorPeriodPositions.PriorPeriodPosition", &stampSpec{date: "@date"}, time.UTC)
}

// Securities returns, per selected model, the security info records in file
// order, not time-indexed.
func (s *Statement) Securities(sel ModelSelector) (map[string]*Table, error) {
	return s.tables(sel, "$.SecuritiesInfo.SecurityInfo", nil, nil)
}
