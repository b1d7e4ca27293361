package flexfolio

import (
	"log"
	"slices"
)

// PriceSource provides daily close prices for a symbol over a date range. The
// returned series is UTC-indexed and may have gaps on non-trading days. It is
// the one external, potentially slow, boundary of the derivations; any retry,
// rate-limit or caching policy belongs to the implementation, not here.
type PriceSource interface {
	Prices(symbol string, from, to Date) (*Series, error)
}

// Positions computes the daily mark-to-market position table over the selected
// models: one column per instrument, in dollars, plus the model cash balance
// under "cash".
//
// Models that never traded are skipped entirely. Per trading model, trades are
// netted per business day (weekend stamps accrue to the preceding Friday), the
// full daily quantity series is reconstructed backward from the open-position
// quantity at period end, and multiplied with the symbol's close prices. A
// symbol whose price series does not overlap the period keeps a zeroed column;
// a warning is logged and the valuation continues, since one dead symbol must
// not block portfolio-wide output.
//
// The per-model frames are zero-filled, stripped of days with no open exposure
// and summed elementwise into one aggregate frame. When the selection contains
// no trading model the result is (nil, nil): no data rather than an error.
func (s *Statement) Positions(sel ModelSelector, src PriceSource) (*Frame, error) {
	summaries, err := s.EquitySummary(sel)
	if err != nil {
		return nil, err
	}
	trades, err := s.Trades(sel)
	if err != nil {
		return nil, err
	}
	opens, err := s.OpenPositions(sel)
	if err != nil {
		return nil, err
	}

	var total *Frame
	for _, section := range s.selected(sel) {
		traded := trades[section.Name]
		if traded.Empty() {
			continue
		}

		frame := NewFrame()
		cash := &Series{}
		if summary := summaries[section.Name]; summary != nil {
			for _, row := range summary.Rows {
				cash.Append(DateOf(row.Stamp), row.Float("@cash"))
			}
		}
		frame.SetColumn("cash", cash)

		open := opens[section.Name]
		for _, symbol := range tradedSymbols(open, traded) {
			frame.SetColumn(symbol, s.valueSymbol(symbol, section, open, traded, src))
		}

		frame.ZeroFill()
		frame = frame.DropZeroRows("cash")
		if total == nil {
			total = frame
		} else {
			total = total.Add(frame)
		}
	}
	return total, nil
}

// valueSymbol computes one instrument's daily dollar value over the section's
// reporting period.
func (s *Statement) valueSymbol(symbol string, section *ModelSection, open, traded *Table, src PriceSource) *Series {
	// Quantity at period end; a symbol traded flat has no open position record.
	var finalQty float64
	if open != nil {
		for _, row := range open.Rows {
			if row.String("@symbol") == symbol {
				finalQty = row.Float("@position")
				break
			}
		}
	}

	daily := &Series{}
	for _, row := range traded.Rows {
		if row.String("@symbol") == symbol {
			daily.AppendAdd(DateOf(row.Stamp).BusinessDay(), row.Float("@quantity"))
		}
	}
	quantities := DailyQuantities(finalQty, daily, section.From, section.To)

	prices, err := src.Prices(symbol, section.From, section.To)
	value := &Series{}
	if err == nil && prices != nil {
		for day, price := range prices.Values() {
			// Quantity gaps against the price calendar are backfilled: the
			// reconstructed quantity holds until the next recorded change.
			if qty, ok := quantities.Backfill(day); ok {
				value.Append(day, qty*price)
			}
		}
	}
	if value.Len() == 0 {
		log.Printf("warning: no price data for %s between %s and %s", symbol, section.From, section.To)
	}
	return value
}

// tradedSymbols returns the distinct symbols of the open position and trade
// records, in first-appearance order.
func tradedSymbols(open, traded *Table) []string {
	var symbols []string
	for _, table := range []*Table{open, traded} {
		if table == nil {
			continue
		}
		for _, row := range table.Rows {
			if symbol := row.String("@symbol"); symbol != "" && !slices.Contains(symbols, symbol) {
				symbols = append(symbols, symbol)
			}
		}
	}
	return symbols
}
