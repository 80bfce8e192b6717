// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package elo implements the Elo rating transfer used to score head-to-head
book comparisons.

# Expected Score

The winner's expected score is a logistic curve over the rating gap,
scaled so that a 400 point lead means 10:1 odds:

	expected = 1 / (1 + 10^((loser - winner) / 400))

# Update

The winner gains and the loser drops by the same amount:

	delta  = k * (1 - expected)
	winner = round(winner + delta)
	loser  = round(loser - delta)

Rounding is half-to-even, so 1515.5 becomes 1516 and 1484.5 becomes 1484.

	w, l := elo.Update(1500, 1500, elo.DefaultK) // 1516, 1484

# Constants

  - DefaultK: 32, the most points a single vote can move
  - DefaultRating: 1500, the rating of a book that has never been compared
*/
package elo
