package entities

import "math"

// WinPayout returns the total return (stake plus profit) for a winning
// bet at the given American odds. Positive odds pay odds/100 per unit
// staked; negative odds pay 100/|odds|.
func WinPayout(stake float64, odds int) float64 {
	if odds > 0 {
		return RoundCents(stake + stake*float64(odds)/100.0)
	}
	return RoundCents(stake + stake*100.0/float64(-odds))
}

// ParlayMultiplier returns the combined decimal multiplier for a set of
// American odds. Pushed legs must be excluded by the caller before
// computing the multiplier.
func ParlayMultiplier(oddsList []int) float64 {
	multiplier := 1.0
	for _, odds := range oddsList {
		if odds > 0 {
			multiplier *= float64(odds)/100.0 + 1.0
		} else {
			multiplier *= 100.0/float64(-odds) + 1.0
		}
	}
	return multiplier
}

// RoundCents rounds a dollar amount to the nearest cent
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
