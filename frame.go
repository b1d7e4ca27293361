package flexfolio

import (
	"encoding/json"
	"math"
	"slices"
)

// Frame is a set of named daily series sharing a date index, in insertion
// order. It provides the few alignment primitives the derivations need:
// elementwise addition with zero fill, zero filling over the date union, and
// dropping of all-zero rows.
type Frame struct {
	columns []string
	series  map[string]*Series
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{series: make(map[string]*Series)}
}

// Columns returns the column names in insertion order.
func (f *Frame) Columns() []string { return slices.Clone(f.columns) }

// Column returns the series stored under name, or nil.
func (f *Frame) Column(name string) *Series { return f.series[name] }

// SetColumn stores a series under name, replacing any previous one.
func (f *Frame) SetColumn(name string, s *Series) *Frame {
	if _, ok := f.series[name]; !ok {
		f.columns = append(f.columns, name)
	}
	f.series[name] = s
	return f
}

// Dates returns the sorted union of all column dates.
func (f *Frame) Dates() []Date {
	var union []Date
	for _, name := range f.columns {
		for day := range f.series[name].Values() {
			if !slices.Contains(union, day) {
				union = append(union, day)
			}
		}
	}
	slices.SortFunc(union, Date.Compare)
	return union
}

// ZeroFill sets every missing (or non-finite) point of every column to zero,
// over the union of all column dates.
func (f *Frame) ZeroFill() *Frame {
	dates := f.Dates()
	for _, name := range f.columns {
		col := f.series[name]
		for _, day := range dates {
			v, ok := col.Get(day)
			if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
				col.Append(day, 0)
			}
		}
	}
	return f
}

// DropZeroRows removes the dates on which every column other than 'except' is
// zero or absent.
func (f *Frame) DropZeroRows(except string) *Frame {
	keep := make([]Date, 0)
	for _, day := range f.Dates() {
		for _, name := range f.columns {
			if name == except {
				continue
			}
			if v, ok := f.series[name].Get(day); ok && v != 0 {
				keep = append(keep, day)
				break
			}
		}
	}
	out := NewFrame()
	for _, name := range f.columns {
		col := &Series{}
		for _, day := range keep {
			if v, ok := f.series[name].Get(day); ok {
				col.Append(day, v)
			}
		}
		out.SetColumn(name, col)
	}
	return out
}

// Add returns a new frame over the union of both frames' columns and dates,
// summing values elementwise with missing points treated as zero.
func (f *Frame) Add(o *Frame) *Frame {
	out := NewFrame()
	for _, name := range f.columns {
		out.SetColumn(name, f.series[name].Add(&Series{}))
	}
	for _, name := range o.columns {
		if prev := out.Column(name); prev != nil {
			out.SetColumn(name, prev.Add(o.series[name]))
		} else {
			out.SetColumn(name, o.series[name].Add(&Series{}))
		}
	}
	return out.ZeroFill()
}

// MarshalJSON encodes the frame as an array of row objects, one per date, with
// a "date" key and one key per column. Non-finite values encode as null.
func (f *Frame) MarshalJSON() ([]byte, error) {
	rows := make([]map[string]any, 0)
	for _, day := range f.Dates() {
		row := map[string]any{"date": day.String()}
		for _, name := range f.columns {
			v, ok := f.series[name].Get(day)
			switch {
			case !ok, math.IsNaN(v), math.IsInf(v, 0):
				row[name] = nil
			default:
				row[name] = v
			}
		}
		rows = append(rows, row)
	}
	return json.Marshal(rows)
}
