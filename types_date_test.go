package stashmate

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 10, 10)
	d2 := NewDate(2025, 10, 10)

	if d1.time() != d2.time() {
		// time.Time values are usually not comparable (the timezone is a
		// pointer); this also checks that the property remains true.
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	today := Today()
	currentYear := today.Year()
	currentMonth := today.Month()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},

		{"0d", today, false},
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"-2w", today.Add(-14), false},
		{"+1m", NewDate(currentYear, currentMonth+1, today.Day()), false},
		{"+1y", NewDate(currentYear+1, currentMonth, today.Day()), false},
		{"-1y", NewDate(currentYear-1, currentMonth, today.Day()), false},
		{"1d", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStartEndOf(t *testing.T) {
	tests := []struct {
		name      string
		d         Date
		p         Period
		wantStart Date
		wantEnd   Date
	}{
		{
			// 2025-10-15 is a Wednesday; weeks run Monday to Sunday.
			name:      "week of a Wednesday",
			d:         NewDate(2025, 10, 15),
			p:         Weekly,
			wantStart: NewDate(2025, 10, 13),
			wantEnd:   NewDate(2025, 10, 19),
		},
		{
			name:      "week of a Monday is itself",
			d:         NewDate(2025, 10, 13),
			p:         Weekly,
			wantStart: NewDate(2025, 10, 13),
			wantEnd:   NewDate(2025, 10, 19),
		},
		{
			name:      "week of a Sunday ends on it",
			d:         NewDate(2025, 10, 19),
			p:         Weekly,
			wantStart: NewDate(2025, 10, 13),
			wantEnd:   NewDate(2025, 10, 19),
		},
		{
			name:      "leap february",
			d:         NewDate(2024, 2, 15),
			p:         Monthly,
			wantStart: NewDate(2024, 2, 1),
			wantEnd:   NewDate(2024, 2, 29),
		},
		{
			name:      "plain february",
			d:         NewDate(2025, 2, 15),
			p:         Monthly,
			wantStart: NewDate(2025, 2, 1),
			wantEnd:   NewDate(2025, 2, 28),
		},
		{
			name:      "year",
			d:         NewDate(2025, 6, 10),
			p:         Yearly,
			wantStart: NewDate(2025, 1, 1),
			wantEnd:   NewDate(2025, 12, 31),
		},
		{
			name:      "day is itself",
			d:         NewDate(2025, 10, 10),
			p:         Daily,
			wantStart: NewDate(2025, 10, 10),
			wantEnd:   NewDate(2025, 10, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.StartOf(tt.p); got != tt.wantStart {
				t.Errorf("StartOf() = %v, want %v", got, tt.wantStart)
			}
			if got := tt.d.EndOf(tt.p); got != tt.wantEnd {
				t.Errorf("EndOf() = %v, want %v", got, tt.wantEnd)
			}
		})
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected Date
		wantErr  bool
	}{
		{
			name:     "Zero Date from empty string",
			json:     `""`,
			expected: Date{},
			wantErr:  false,
		},
		{
			name:     "Non-Zero Date",
			json:     `"2025-10-10"`,
			expected: NewDate(2025, 10, 10),
			wantErr:  false,
		},
		{
			name:    "Invalid Date",
			json:    `"not-a-date"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.json), &d)
			if (err != nil) != tt.wantErr {
				t.Errorf("json.Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && d != tt.expected {
				t.Errorf("json.Unmarshal() got = %v, want %v", d, tt.expected)
			}
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	if got, _ := json.Marshal(Date{}); string(got) != `""` {
		t.Errorf("json.Marshal(zero) = %s, want %q", got, `""`)
	}
	if got, _ := json.Marshal(NewDate(2025, 10, 2)); string(got) != `"2025-10-02"` {
		t.Errorf("json.Marshal() = %s, want %q", got, `"2025-10-02"`)
	}
}
