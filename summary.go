package flexfolio

import (
	"errors"
)

// Summary condenses a statement's derivations into one report for rendering:
// the reporting period, NAV performance, external flows and trading activity
// of the selected models.
type Summary struct {
	Models []string
	Period Range

	StartingNAV Money
	EndingNAV   Money
	NetFlow     Money // algebraic sum of external deposits and withdrawals

	Return     Percent // cumulative time-weighted return over the period
	ReturnDays int     // number of daily return observations

	TradeCount int
	LastTrades []Transaction // most recent trades, newest last
}

// summaryTradeTail bounds how many trades the summary carries.
const summaryTradeTail = 5

// NewSummary derives the summary of the selected models, with monetary values
// labeled in the given reporting currency. Selections without trades or
// returns still summarize; the affected sections are zero.
func NewSummary(s *Statement, sel ModelSelector, currency string) (*Summary, error) {
	sections := s.selected(sel)
	if len(sections) == 0 {
		return nil, &NoDataError{Op: "summary", Selector: sel}
	}

	summary := &Summary{}
	for _, section := range sections {
		summary.Models = append(summary.Models, section.Name)
		if summary.Period.From.IsZero() || section.From.Before(summary.Period.From) {
			summary.Period.From = section.From
		}
		if section.To.After(summary.Period.To) {
			summary.Period.To = section.To
		}
	}

	starting, ending := s.NAV(sel)
	summary.StartingNAV = M(starting, currency)
	summary.EndingNAV = M(ending, currency)

	flows, err := s.CashFlow(sel)
	if err != nil {
		return nil, err
	}
	var net float64
	for _, flow := range flows.values {
		net += flow
	}
	summary.NetFlow = M(net, currency)

	returns, err := s.Returns(sel)
	var noData *NoDataError
	switch {
	case errors.As(err, &noData):
		// No usable equity summary: report without a return figure.
	case err != nil:
		return nil, err
	default:
		cumulative := 1.0
		for _, r := range returns.values {
			cumulative *= 1 + r
		}
		summary.Return = Percent(100 * (cumulative - 1))
		summary.ReturnDays = returns.Len()
	}

	trades, err := s.Transactions(sel)
	switch {
	case errors.As(err, &noData):
		// Tradeless selection, legal for a summary.
	case err != nil:
		return nil, err
	default:
		summary.TradeCount = len(trades)
		tail := len(trades) - summaryTradeTail
		if tail < 0 {
			tail = 0
		}
		summary.LastTrades = trades[tail:]
	}
	return summary, nil
}
