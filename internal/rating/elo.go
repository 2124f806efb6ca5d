package rating

import "math"

// kFactor is the maximum number of rating points exchanged per match.
const kFactor = 32

// NewEloRatings computes both players' post-match ratings from their current
// ratings and the outcome. Pure function; the single rounding step here is
// the only place fractional rating drift can occur.
func NewEloRatings(rating1, rating2 int, player1Win bool) (int, int) {
	t1 := math.Pow(10, float64(rating1)/400)
	t2 := math.Pow(10, float64(rating2)/400)
	expected1 := t1 / (t1 + t2)
	expected2 := t2 / (t1 + t2)

	score1, score2 := 0.0, 1.0
	if player1Win {
		score1, score2 = 1.0, 0.0
	}

	newRating1 := rating1 + int(math.Round(kFactor*(score1-expected1)))
	newRating2 := rating2 + int(math.Round(kFactor*(score2-expected2)))
	return newRating1, newRating2
}
