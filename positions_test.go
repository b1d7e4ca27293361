package flexfolio

import (
	"reflect"
	"testing"
)

// fakeSource serves canned price series, empty for unknown symbols.
type fakeSource map[string]*Series

func (f fakeSource) Prices(symbol string, from, to Date) (*Series, error) {
	if prices, ok := f[symbol]; ok {
		return prices, nil
	}
	return &Series{}, nil
}

func TestPositions(t *testing.T) {
	stmt := mustParse(t, sampleStatement)
	src := fakeSource{
		"AAPL": seriesOf(t, 5, 100, 6, 100, 7, 102, 8, 110, 9, 112),
	}

	frame, err := stmt.Positions(OneModel("growth"), src)
	if err != nil {
		t.Fatalf("Positions() error = %v", err)
	}
	if frame == nil {
		t.Fatal("Positions() = nil")
	}
	if cols := frame.Columns(); !reflect.DeepEqual(cols, []string{"cash", "AAPL"}) {
		t.Fatalf("Columns = %v, want [cash AAPL]", cols)
	}

	// Quantities walk back from the 5 shares held at period end: flat on
	// Feb 5, 10 shares Feb 6 and 7, 5 shares from Feb 8. The flat Feb 5 row
	// is dropped, the all-cash placeholder day stays because AAPL has value.
	if !frame.Column("AAPL").Equal(seriesOf(t, 6, 1000, 7, 1020, 8, 550, 9, 560)) {
		t.Errorf("AAPL = %v", frame.Column("AAPL"))
	}
	if !frame.Column("cash").Equal(seriesOf(t, 6, 1000, 7, 0, 8, 1500, 9, 1500)) {
		t.Errorf("cash = %v", frame.Column("cash"))
	}
}

func TestPositions_SkipsTradelessModels(t *testing.T) {
	stmt := mustParse(t, sampleStatement)
	src := fakeSource{
		"AAPL": seriesOf(t, 5, 100, 6, 100, 7, 102, 8, 110, 9, 112),
	}

	// income never trades: the aggregate is growth's frame alone.
	all, err := stmt.Positions(AllModels(), src)
	if err != nil {
		t.Fatalf("Positions(all) error = %v", err)
	}
	one, err := stmt.Positions(OneModel("growth"), src)
	if err != nil {
		t.Fatalf("Positions(growth) error = %v", err)
	}
	for _, name := range one.Columns() {
		if !all.Column(name).Equal(one.Column(name)) {
			t.Errorf("column %s: all = %v, growth = %v", name, all.Column(name), one.Column(name))
		}
	}

	// A selection with no trading model at all yields no frame and no error.
	frame, err := stmt.Positions(OneModel("income"), src)
	if err != nil {
		t.Fatalf("Positions(income) error = %v", err)
	}
	if frame != nil {
		t.Errorf("Positions(income) = %v, want nil", frame)
	}
}

func TestPositions_MissingPrices(t *testing.T) {
	stmt := mustParse(t, sampleStatement)

	// No price data for AAPL: valuation continues with an empty column, and
	// with no exposure left every row drops out.
	frame, err := stmt.Positions(OneModel("growth"), fakeSource{})
	if err != nil {
		t.Fatalf("Positions() error = %v", err)
	}
	if frame == nil {
		t.Fatal("Positions() = nil")
	}
	if dates := frame.Dates(); len(dates) != 0 {
		t.Errorf("Dates = %v, want none", dates)
	}
}

func TestTradedSymbols(t *testing.T) {
	open := &Table{Rows: []Row{
		{Fields: map[string]any{"@symbol": "MSFT"}},
	}}
	traded := &Table{Rows: []Row{
		{Fields: map[string]any{"@symbol": "AAPL"}},
		{Fields: map[string]any{"@symbol": "MSFT"}},
		{Fields: map[string]any{"@symbol": "AAPL"}},
	}}
	// Open positions first, then trade order, no duplicates.
	if got := tradedSymbols(open, traded); !reflect.DeepEqual(got, []string{"MSFT", "AAPL"}) {
		t.Errorf("tradedSymbols = %v, want [MSFT AAPL]", got)
	}
	if got := tradedSymbols(nil, nil); got != nil {
		t.Errorf("tradedSymbols(nil, nil) = %v, want nil", got)
	}
}
