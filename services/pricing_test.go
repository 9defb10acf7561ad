package services

import (
	"testing"
	"time"
)

func TestCalculatePrice(t *testing.T) {
	day := time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)
	hm := func(hour, minute int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}

	tests := []struct {
		name       string
		rate       float64
		start, end time.Time
		want       float64
	}{
		{"two full hours", 25000, hm(10, 0), hm(12, 0), 50000},
		{"ninety minutes bills one hour", 20000, hm(18, 0), hm(19, 30), 20000},
		{"single hour", 30000, hm(9, 0), hm(10, 0), 30000},
		{"under one hour bills nothing", 25000, hm(10, 0), hm(10, 45), 0},
		{"partial trailing hour truncated", 10000, hm(8, 0), hm(11, 59), 30000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePrice(tt.rate, tt.start, tt.end)
			if got != tt.want {
				t.Errorf("CalculatePrice(%v, %v, %v) = %v, want %v", tt.rate, tt.start, tt.end, got, tt.want)
			}
		})
	}
}
