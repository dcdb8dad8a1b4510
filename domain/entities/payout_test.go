package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinPayout(t *testing.T) {
	tests := []struct {
		name     string
		stake    float64
		odds     int
		expected float64
	}{
		{"even money", 100, 100, 200},
		{"plus odds", 100, 120, 220},
		{"minus odds", 150, -150, 250},
		{"minus odds fractional", 50, -150, 83.33},
		{"small stake plus odds", 10, 250, 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WinPayout(tt.stake, tt.odds))
		})
	}
}

func TestParlayMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, ParlayMultiplier(nil))
	assert.Equal(t, 2.0, ParlayMultiplier([]int{100}))
	assert.InDelta(t, 3.8181, ParlayMultiplier([]int{100, -110}), 0.001)
	assert.InDelta(t, 8.0, ParlayMultiplier([]int{100, 100, 100}), 0.0001)
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 38.18, RoundCents(38.181818))
	assert.Equal(t, 38.19, RoundCents(38.186))
	assert.Equal(t, 0.0, RoundCents(0))
}
