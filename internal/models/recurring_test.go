package models

import (
	"testing"
	"time"

	"takatrack/internal/money"
)

func TestRecurringExpenseValidate(t *testing.T) {
	base := func() *RecurringExpense {
		return &RecurringExpense{
			UserID:    "u1",
			Name:      "Rent",
			Category:  "Housing",
			Amount:    money.MustParse("15000"),
			Currency:  "BDT",
			Frequency: FrequencyMonthly,
			StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	tests := []struct {
		name        string
		mutate      func(*RecurringExpense)
		expectError bool
	}{
		{name: "valid monthly", mutate: func(r *RecurringExpense) {}},
		{name: "valid weekly", mutate: func(r *RecurringExpense) { r.Frequency = FrequencyWeekly }},
		{name: "valid yearly", mutate: func(r *RecurringExpense) { r.Frequency = FrequencyYearly }},
		{name: "unknown frequency", mutate: func(r *RecurringExpense) { r.Frequency = "daily" }, expectError: true},
		{name: "zero amount", mutate: func(r *RecurringExpense) { r.Amount = money.Zero() }, expectError: true},
		{name: "missing name", mutate: func(r *RecurringExpense) { r.Name = "" }, expectError: true},
		{name: "end before start", mutate: func(r *RecurringExpense) {
			end := r.StartDate.AddDate(0, -1, 0)
			r.EndDate = &end
		}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base()
			tt.mutate(r)
			err := r.Validate()
			if tt.expectError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error but got: %v", err)
			}
		})
	}
}

func TestRecurringExpenseActiveDuring(t *testing.T) {
	start, end, err := MonthPeriod("2025-06")
	if err != nil {
		t.Fatalf("month period: %v", err)
	}

	jan := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	may := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	july := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		r        RecurringExpense
		expected bool
	}{
		{name: "open ended, started earlier", r: RecurringExpense{Active: true, StartDate: jan}, expected: true},
		{name: "ends before window", r: RecurringExpense{Active: true, StartDate: jan, EndDate: &may}, expected: false},
		{name: "starts after window", r: RecurringExpense{Active: true, StartDate: july}, expected: false},
		{name: "inactive", r: RecurringExpense{Active: false, StartDate: jan}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.ActiveDuring(start, end); got != tt.expected {
				t.Errorf("ActiveDuring = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMonthPeriod(t *testing.T) {
	start, end, err := MonthPeriod("2025-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Day() != 1 || start.Month() != time.February {
		t.Errorf("unexpected start: %v", start)
	}
	if end.Month() != time.February || end.Day() != 28 {
		t.Errorf("unexpected end: %v", end)
	}

	if _, _, err := MonthPeriod("2025-2"); err == nil {
		t.Error("expected error for malformed month")
	}
}
