package flexfolio

import (
	"sort"
	"time"
)

// Transaction is one normalized ledger row, in the tabular shape backtesting
// tools expect. Commission comes from the statement as a negative number and
// is passed through unchanged.
type Transaction struct {
	Amount     float64   `json:"amount"`
	Commission float64   `json:"commission"`
	OrderID    string    `json:"order_id"`
	Price      float64   `json:"price"`
	Symbol     string    `json:"symbol"`
	SID        string    `json:"sid"`
	TxnDollars float64   `json:"txn_dollars"`
	DT         time.Time `json:"dt"`
}

// Transactions flattens the trade records of the selected models into a single
// ledger sorted ascending by timestamp. Forex trades are not filtered out; the
// ledger carries every trade record as-is.
//
// It returns a *NoDataError when no selected model has any trades: an empty
// ledger is indistinguishable from a misaddressed model and is not silently
// produced.
func (s *Statement) Transactions(sel ModelSelector) ([]Transaction, error) {
	trades, err := s.Trades(sel)
	if err != nil {
		return nil, err
	}

	var ledger []Transaction
	for _, section := range s.selected(sel) {
		table := trades[section.Name]
		if table.Empty() {
			continue
		}
		for _, row := range table.Rows {
			ledger = append(ledger, Transaction{
				Amount:     row.Float("@quantity"),
				Commission: row.Float("@ibCommission"),
				OrderID:    row.String("@ibExecID"),
				Price:      row.Float("@tradePrice"),
				Symbol:     row.String("@symbol"),
				SID:        row.String("@symbol"),
				TxnDollars: row.Float("@netCash"),
				DT:         row.Stamp,
			})
		}
	}
	if len(ledger) == 0 {
		return nil, &NoDataError{Op: "transactions", Selector: sel}
	}
	sort.SliceStable(ledger, func(i, j int) bool { return ledger[i].DT.Before(ledger[j].DT) })
	return ledger, nil
}
