package services

import (
	"testing"

	"github.com/Danik911/dublin-accommodation-bot/config"
	"github.com/Danik911/dublin-accommodation-bot/models"
)

func TestAnalyzeCityCentre(t *testing.T) {
	a := NewCommuteAnalyzer(config.DefaultPersona())
	result := a.Analyze(53.3498, -6.2603)

	if len(result) != 2 {
		t.Fatalf("got %d analyses; want one per landmark", len(result))
	}
	if result[0].DestinationName != "Griffith College Dublin" {
		t.Errorf("first destination = %q; want the college", result[0].DestinationName)
	}
	for _, c := range result {
		if c.TransportScore != models.ScoreExcellent {
			t.Errorf("%s from city centre scored %s; want Excellent", c.DestinationName, c.TransportScore)
		}
		if c.EstimatedTime != "15-25 min" {
			t.Errorf("%s estimated %q; want 15-25 min", c.DestinationName, c.EstimatedTime)
		}
	}
}

func TestCommuteBuckets(t *testing.T) {
	tests := []struct {
		distanceKm float64
		wantTime   string
		wantScore  models.TransportScore
	}{
		{1, "15-25 min", models.ScoreExcellent},
		{4.9, "15-25 min", models.ScoreExcellent},
		{5, "25-40 min", models.ScoreGood},
		{9.9, "25-40 min", models.ScoreGood},
		{10, "40-60 min", models.ScoreFair},
		{19.9, "40-60 min", models.ScoreFair},
		{20, "60+ min", models.ScorePoor},
		{55, "60+ min", models.ScorePoor},
	}

	for _, tt := range tests {
		if got := estimateCommuteTime(tt.distanceKm); got != tt.wantTime {
			t.Errorf("estimateCommuteTime(%.1f) = %q; want %q", tt.distanceKm, got, tt.wantTime)
		}
		if got := scoreTransport(tt.distanceKm); got != tt.wantScore {
			t.Errorf("scoreTransport(%.1f) = %s; want %s", tt.distanceKm, got, tt.wantScore)
		}
	}
}

func TestAnalyzeDistantPoint(t *testing.T) {
	a := NewCommuteAnalyzer(config.DefaultPersona())
	// Bray is ~19km from the landmarks.
	result := a.Analyze(53.2028, -6.0986)
	for _, c := range result {
		if c.TransportScore == models.ScoreExcellent {
			t.Errorf("%s from Bray scored Excellent; too generous", c.DestinationName)
		}
	}
}
