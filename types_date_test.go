package flexfolio

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2018-02-05", NewDate(2018, time.February, 5), false},
		{"20180205", NewDate(2018, time.February, 5), false},
		{"2018-2-5", Date{}, true},
		{"180205", Date{}, true},
		{"", Date{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseDate(%q) error = %v, want err=%v", tt.input, err, tt.err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestNewDate_Normalizes(t *testing.T) {
	if got := NewDate(2018, time.February, 0); got != NewDate(2018, time.January, 31) {
		t.Errorf("NewDate(2018, 2, 0) = %v, want 2018-01-31", got)
	}
	if got := NewDate(2018, time.December, 32); got != NewDate(2019, time.January, 1) {
		t.Errorf("NewDate(2018, 12, 32) = %v, want 2019-01-01", got)
	}
}

func TestDateOf_UsesUTCDay(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	// 23:00 EST on Feb 5 is already Feb 6 in UTC.
	stamp := time.Date(2018, 2, 5, 23, 0, 0, 0, est)
	if got := DateOf(stamp); got != NewDate(2018, time.February, 6) {
		t.Errorf("DateOf(%v) = %v, want 2018-02-06", stamp, got)
	}
}

func TestBusinessDay(t *testing.T) {
	tests := []struct {
		in, out Date
	}{
		{NewDate(2018, 2, 9), NewDate(2018, 2, 9)},   // Friday stays
		{NewDate(2018, 2, 10), NewDate(2018, 2, 9)},  // Saturday rolls back
		{NewDate(2018, 2, 11), NewDate(2018, 2, 9)},  // Sunday rolls back
		{NewDate(2018, 2, 12), NewDate(2018, 2, 12)}, // Monday stays
	}
	for _, tt := range tests {
		if got := tt.in.BusinessDay(); got != tt.out {
			t.Errorf("%v.BusinessDay() = %v, want %v", tt.in, got, tt.out)
		}
	}
}

func TestDate_JSON(t *testing.T) {
	in := NewDate(2018, 2, 5)
	content, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(content) != `"2018-02-05"` {
		t.Errorf("Marshal = %s, want \"2018-02-05\"", content)
	}
	var out Date
	if err := json.Unmarshal(content, &out); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if out != in {
		t.Errorf("roundtrip = %v, want %v", out, in)
	}
}

func TestRange_Days(t *testing.T) {
	r := NewRange(NewDate(2018, 2, 5), NewDate(2018, 2, 9))
	if r.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", r.Len())
	}
	var got []Date
	for d := range r.Days() {
		got = append(got, d)
	}
	if len(got) != 5 || got[0] != r.From || got[4] != r.To {
		t.Errorf("Days() = %v, want 5 consecutive days from %v", got, r.From)
	}
	if !r.Contains(NewDate(2018, 2, 7)) || r.Contains(NewDate(2018, 2, 10)) {
		t.Error("Contains() boundaries are wrong")
	}
}
