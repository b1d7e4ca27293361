package flexfolio

// DailyQuantities reconstructs a complete daily position-quantity series over
// [first, last] from the quantity known exactly at the end of the period and
// the sparse series of net trade quantities per day.
//
// The ending quantity anchors the walk: the series at 'last' is finalQty, and
// every earlier day is the next day's quantity minus the net trade of that
// next day (a day without trades changes nothing). The scan is an explicit
// backward pass over the grid, one value per calendar day, no gaps.
func DailyQuantities(finalQty float64, trades *Series, first, last Date) *Series {
	if last.Before(first) {
		return &Series{}
	}
	grid := Range{From: first, To: last}
	n := grid.Len()

	days := make([]Date, 0, n)
	for day := range grid.Days() {
		days = append(days, day)
	}

	// Net trade per grid day; trades outside the grid cannot explain any
	// in-grid quantity change and are ignored.
	deltas := make([]float64, n)
	if trades != nil {
		for i, day := range days {
			if qty, ok := trades.Get(day); ok {
				deltas[i] = qty
			}
		}
	}

	quantities := make([]float64, n)
	quantities[n-1] = finalQty
	for i := n - 2; i >= 0; i-- {
		quantities[i] = quantities[i+1] - deltas[i+1]
	}
	return &Series{days: days, values: quantities}
}
