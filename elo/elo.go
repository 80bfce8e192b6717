// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package elo

import "math"

const (
	DefaultK      = 32
	DefaultRating = 1500

	// scale is the rating gap that corresponds to 10:1 odds
	scale = 400.0
)

// Expected returns the probability that a player rated a beats one rated b
func Expected(a, b int) float64 {
	return 1.0 / (1.0 + math.Pow(10, float64(b-a)/scale))
}

// Update returns the new winner and loser ratings after one comparison.
// k is the sensitivity constant, the most points one result can move.
func Update(winner, loser, k int) (int, int) {
	delta := float64(k) * (1.0 - Expected(winner, loser))

	newWinner := math.RoundToEven(float64(winner) + delta)
	newLoser := math.RoundToEven(float64(loser) - delta)

	return int(newWinner), int(newLoser)
}
