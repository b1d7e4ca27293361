package flexfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"math"
	"slices"
	"sort"
)

// Series stores a chronological series of float64 values, each associated with
// a calendar day. Days are unique and the series is always sorted.
//
// Values are plain floats: NaN and ±Inf are legal and propagate through
// arithmetic untouched.
type Series struct {
	days   []Date
	values []float64
}

// Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.days) }

// First returns the earliest date and value in the series.
// If the series is empty, it returns zero values.
func (s *Series) First() (day Date, value float64) {
	if len(s.days) == 0 {
		return Date{}, 0
	}
	return s.days[0], s.values[0]
}

// Latest returns the latest date and value in the series.
// If the series is empty, it returns zero values.
func (s *Series) Latest() (day Date, value float64) {
	last := len(s.days) - 1
	if last < 0 {
		return Date{}, 0
	}
	return s.days[last], s.values[last]
}

// chronological is a private implementation to keep the series chronologically sorted.
type chronological struct{ *Series }

func (c chronological) Len() int           { return len(c.days) }
func (c chronological) Less(i, j int) bool { return c.days[i].Before(c.days[j]) }
func (c chronological) Swap(i, j int) {
	c.days[i], c.days[j] = c.days[j], c.days[i]
	c.values[i], c.values[j] = c.values[j], c.values[i]
}

func (s *Series) sort() { sort.Sort(chronological{s}) }

// Append adds a point to the series. An existing value at that date is overwritten.
func (s *Series) Append(on Date, v float64) *Series {
	if i := slices.Index(s.days, on); i >= 0 {
		s.values[i] = v
		return s
	}
	s.days, s.values = append(s.days, on), append(s.values, v)
	s.sort()
	return s
}

// AppendAdd adds a point to the series, summing with any existing value at that
// date. Appending every record of a day this way is the daily resample-by-sum.
func (s *Series) AppendAdd(on Date, v float64) *Series {
	if i := slices.Index(s.days, on); i >= 0 {
		s.values[i] += v
		return s
	}
	s.days, s.values = append(s.days, on), append(s.values, v)
	s.sort()
	return s
}

// Values returns an iterator over all date/value pairs, in chronological order.
func (s *Series) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range s.days {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at 'day' and true, or zero and false.
func (s *Series) Get(day Date) (float64, bool) {
	if i := slices.Index(s.days, day); i >= 0 {
		return s.values[i], true
	}
	return 0, false
}

// search returns the insertion index of day in the sorted days slice.
func (s *Series) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(s.days, day, Date.Compare)
}

// Backfill returns the value at 'day', or the first value after it when the day
// is missing. It returns false only when no value exists at or after the day.
func (s *Series) Backfill(day Date) (float64, bool) {
	i, _ := s.search(day)
	if i >= len(s.days) {
		return 0, false
	}
	return s.values[i], true
}

// Add returns a new series over the union of both date sets, summing values
// elementwise with missing points treated as zero.
func (s *Series) Add(o *Series) *Series {
	sum := &Series{
		days:   make([]Date, 0, len(s.days)+o.Len()),
		values: make([]float64, 0, len(s.days)+o.Len()),
	}
	for day, v := range s.Values() {
		sum.AppendAdd(day, v)
	}
	for day, v := range o.Values() {
		sum.AppendAdd(day, v)
	}
	return sum
}

// DropZeros returns a new series without the exactly-zero points.
func (s *Series) DropZeros() *Series {
	out := &Series{}
	for day, v := range s.Values() {
		if v != 0 {
			out.Append(day, v)
		}
	}
	return out
}

// Equal reports whether both series hold the same dates and values.
// NaN values are considered equal to each other.
func (s *Series) Equal(o *Series) bool {
	if s.Len() != o.Len() {
		return false
	}
	for i := range s.days {
		if s.days[i] != o.days[i] {
			return false
		}
		if s.values[i] != o.values[i] && !(math.IsNaN(s.values[i]) && math.IsNaN(o.values[i])) {
			return false
		}
	}
	return true
}

func (s *Series) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, on := range s.days {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: %g", on, s.values[i])
	}
	buf.WriteByte('}')
	return buf.String()
}

// MarshalJSON encodes the series as an array of {date, value} objects.
// Non-finite values are encoded as null, since JSON has no spelling for them.
func (s *Series) MarshalJSON() ([]byte, error) {
	type point struct {
		Date  Date `json:"date"`
		Value any  `json:"value"`
	}
	points := make([]point, 0, len(s.days))
	for i, on := range s.days {
		v := any(s.values[i])
		if math.IsNaN(s.values[i]) || math.IsInf(s.values[i], 0) {
			v = nil
		}
		points = append(points, point{Date: on, Value: v})
	}
	return json.Marshal(points)
}
