package payperiod

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodsForMonth(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantEnd   int
		wantLabel [2]string
	}{
		{
			name:      "march has 31 days",
			year:      2024,
			month:     time.March,
			wantEnd:   31,
			wantLabel: [2]string{"March 1-15", "March 16-31"},
		},
		{
			name:      "february in a leap year",
			year:      2024,
			month:     time.February,
			wantEnd:   29,
			wantLabel: [2]string{"February 1-15", "February 16-29"},
		},
		{
			name:      "february in a common year",
			year:      2023,
			month:     time.February,
			wantEnd:   28,
			wantLabel: [2]string{"February 1-15", "February 16-28"},
		},
		{
			name:      "april has 30 days",
			year:      2024,
			month:     time.April,
			wantEnd:   30,
			wantLabel: [2]string{"April 1-15", "April 16-30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods := PeriodsForMonth(tt.year, tt.month)

			if periods[0].Index != 1 || periods[1].Index != 2 {
				t.Fatalf("expected indexes 1 and 2, got %d and %d", periods[0].Index, periods[1].Index)
			}
			if !periods[0].Start.Equal(date(tt.year, tt.month, 1)) {
				t.Errorf("period 1 start = %v, want the 1st", periods[0].Start)
			}
			if !periods[0].End.Equal(date(tt.year, tt.month, 15)) {
				t.Errorf("period 1 end = %v, want the 15th", periods[0].End)
			}
			if !periods[1].Start.Equal(date(tt.year, tt.month, 16)) {
				t.Errorf("period 2 start = %v, want the 16th", periods[1].Start)
			}
			if !periods[1].End.Equal(date(tt.year, tt.month, tt.wantEnd)) {
				t.Errorf("period 2 end = %v, want day %d", periods[1].End, tt.wantEnd)
			}
			if periods[0].Label != tt.wantLabel[0] {
				t.Errorf("period 1 label = %q, want %q", periods[0].Label, tt.wantLabel[0])
			}
			if periods[1].Label != tt.wantLabel[1] {
				t.Errorf("period 2 label = %q, want %q", periods[1].Label, tt.wantLabel[1])
			}
		})
	}
}

func TestPeriodsForMonth_NoGapNoOverlap(t *testing.T) {
	// Period 2 must start exactly one day after period 1 ends, for every
	// month shape.
	for month := time.January; month <= time.December; month++ {
		periods := PeriodsForMonth(2024, month)
		if !periods[0].End.AddDate(0, 0, 1).Equal(periods[1].Start) {
			t.Errorf("%s: gap or overlap between periods: %v .. %v",
				month, periods[0].End, periods[1].Start)
		}
	}
}

func TestCurrentPeriod(t *testing.T) {
	tests := []struct {
		name      string
		today     time.Time
		wantIndex int
	}{
		{"first of month", date(2024, time.March, 1), 1},
		{"day 15 belongs to period 1", date(2024, time.March, 15), 1},
		{"day 16 belongs to period 2", date(2024, time.March, 16), 2},
		{"last of month", date(2024, time.March, 31), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentPeriod(tt.today)
			if got.Index != tt.wantIndex {
				t.Errorf("CurrentPeriod(%v).Index = %d, want %d", tt.today, got.Index, tt.wantIndex)
			}
			if !got.Contains(tt.today) {
				t.Errorf("CurrentPeriod(%v) does not contain today", tt.today)
			}
		})
	}
}

func TestPeriodContains_InclusiveBounds(t *testing.T) {
	period := PeriodsForMonth(2024, time.January)[0]

	if !period.Contains(date(2024, time.January, 1)) {
		t.Error("start date should be inside the period")
	}
	if !period.Contains(date(2024, time.January, 15)) {
		t.Error("end date should be inside the period")
	}
	if period.Contains(date(2024, time.January, 16)) {
		t.Error("day 16 should be outside period 1")
	}
	if period.Contains(date(2023, time.December, 31)) {
		t.Error("previous month should be outside the period")
	}
}
