package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-31", "2024-02-29", "1999-12-01"}
	invalid := []string{"2025-13-01", "2025-02-30", "2025-1-5", "05-01-2025", "2025/01/05", "", "today"}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	valid := []string{"2025-01", "1999-12", "2024-06"}
	invalid := []string{"2025-13", "2025-1", "2025", "01-2025", "2025-01-05", ""}
	for _, period := range valid {
		if _, ok := IsValidPeriod(period); !ok {
			t.Errorf("IsValidPeriod(%q) = false, want true", period)
		}
	}
	for _, period := range invalid {
		if _, ok := IsValidPeriod(period); ok {
			t.Errorf("IsValidPeriod(%q) = true, want false", period)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"07:00", "23:59", "00:00"}
	invalid := []string{"24:00", "7:00:00", "0700", "07:60", ""}
	for _, clock := range valid {
		if !IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = true, want false", clock)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}
