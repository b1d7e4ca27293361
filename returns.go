package flexfolio

// Returns computes the time-weighted daily return series over the selected
// models.
//
// Per model, equity summary points are kept only where cash (or its long or
// short variant) is non-zero: when the lookback period reaches beyond account
// inception, leading zero-filled placeholder days pad the summary and would
// disturb the return calculation. The surviving totals are summed per
// calendar day (duplicate same-day entries collapse), then unioned across
// models with missing days as zero into a single NAV series.
//
// For each day after the first, the return is
//
//	(nav[t] - nav[t-1] - cashflow[t]) / nav[t-1]
//
// with cash flows aligned by date and missing days treated as zero. The first
// day's return is forced to zero, there being no prior value. A zero prior
// NAV is not guarded: the division propagates ±Inf or NaN, and time-weighting
// is known to break down across same-day contribution/withdrawal
// discontinuities. Multi-model periods reproduce the documented calculation
// even where it disagrees with the broker's own analyst report.
func (s *Statement) Returns(sel ModelSelector) (*Series, error) {
	summaries, err := s.EquitySummary(sel)
	if err != nil {
		return nil, err
	}

	nav := &Series{}
	for _, table := range summaries {
		perModel := &Series{}
		for _, row := range table.Rows {
			if row.Float("@cash") == 0 && row.Float("@cashLong") == 0 && row.Float("@cashShort") == 0 {
				continue
			}
			perModel.AppendAdd(DateOf(row.Stamp), row.Float("@total"))
		}
		nav = nav.Add(perModel)
	}
	if nav.Len() == 0 {
		return nil, &NoDataError{Op: "returns", Selector: sel}
	}

	flows, err := s.CashFlow(sel)
	if err != nil {
		return nil, err
	}

	returns := &Series{}
	first := true
	var prev float64
	for day, value := range nav.Values() {
		if first {
			returns.Append(day, 0)
			first = false
		} else {
			flow, _ := flows.Get(day)
			returns.Append(day, (value-prev-flow)/prev)
		}
		prev = value
	}
	return returns, nil
}
