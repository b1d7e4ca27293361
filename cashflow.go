package flexfolio

// Cash-flow activity codes of the statement of funds: external deposits and
// withdrawals. Internal transfers are not differentiated from external ones,
// matching the statement's own categorization.
const (
	activityDeposit    = "DEP"
	activityWithdrawal = "WITH"
)

// CashFlow returns the sparse daily series of external cash movements over the
// selected models: deposit and withdrawal lines denominated in the base
// currency, summed per day, unioned across models. Days that net out to zero
// (e.g. a same-day transfer between two selected models) are dropped.
func (s *Statement) CashFlow(sel ModelSelector) (*Series, error) {
	funds, err := s.StatementOfFunds(sel)
	if err != nil {
		return nil, err
	}
	flows := &Series{}
	for _, table := range funds {
		perModel := &Series{}
		for _, row := range table.Rows {
			if code := row.String("@activityCode"); code != activityDeposit && code != activityWithdrawal {
				continue
			}
			if row.String("@levelOfDetail") != "BaseCurrency" {
				continue
			}
			perModel.AppendAdd(DateOf(row.Stamp), row.Float("@amount"))
		}
		flows = flows.Add(perModel)
	}
	return flows.DropZeros(), nil
}
