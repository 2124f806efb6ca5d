package rating

import (
	"encoding/json"
	"fmt"
)

// InitialRating is the rating every player implicitly starts at for every
// (hand, sport) combination.
const InitialRating = 1000

// Ratings maps (hand, sport) to a rating. It is a value type: Update returns
// a new Ratings and never mutates the receiver, so a Ratings held by an old
// Player snapshot can never be changed behind its back. Cells that were never
// written are not materialized; Get defaults them to InitialRating.
type Ratings struct {
	ratings map[Hand]map[Sport]int
}

// Entry is one explicitly stored rating cell.
type Entry struct {
	Hand   Hand
	Sport  Sport
	Rating int
}

// NewRatings returns an empty Ratings where every cell reads as InitialRating.
func NewRatings() Ratings {
	return Ratings{}
}

// Get returns the stored rating for the given cell, or InitialRating if the
// cell was never written. It never fails.
func (r Ratings) Get(hand Hand, sport Sport) int {
	if bySport, ok := r.ratings[hand]; ok {
		if rating, ok := bySport[sport]; ok {
			return rating
		}
	}
	return InitialRating
}

// Update returns a new Ratings with exactly one cell set. All other cells,
// including other sports under the same hand, carry over unchanged.
func (r Ratings) Update(hand Hand, sport Sport, newRating int) Ratings {
	updated := make(map[Hand]map[Sport]int, len(r.ratings)+1)
	for h, bySport := range r.ratings {
		updated[h] = make(map[Sport]int, len(bySport)+1)
		for s, rating := range bySport {
			updated[h][s] = rating
		}
	}
	if _, ok := updated[hand]; !ok {
		updated[hand] = make(map[Sport]int, 1)
	}
	updated[hand][sport] = newRating
	return Ratings{ratings: updated}
}

// Entries returns all explicitly stored cells. Order is not significant.
func (r Ratings) Entries() []Entry {
	var entries []Entry
	for hand, bySport := range r.ratings {
		for sport, rating := range bySport {
			entries = append(entries, Entry{Hand: hand, Sport: sport, Rating: rating})
		}
	}
	return entries
}

// Equal reports structural equality over the stored cells. A cell that is
// defaulted in one value and explicitly 1000 in the other compares unequal.
func (r Ratings) Equal(other Ratings) bool {
	if len(r.ratings) != len(other.ratings) {
		return false
	}
	for hand, bySport := range r.ratings {
		otherBySport, ok := other.ratings[hand]
		if !ok || len(bySport) != len(otherBySport) {
			return false
		}
		for sport, rating := range bySport {
			otherRating, ok := otherBySport[sport]
			if !ok || rating != otherRating {
				return false
			}
		}
	}
	return true
}

// MarshalJSON serializes to the canonical nested string-keyed mapping, e.g.
// {"Dominant hand":{"Ping-Pong":1016}}.
func (r Ratings) MarshalJSON() ([]byte, error) {
	out := make(map[string]map[string]int, len(r.ratings))
	for hand, bySport := range r.ratings {
		out[string(hand)] = make(map[string]int, len(bySport))
		for sport, rating := range bySport {
			out[string(hand)][string(sport)] = rating
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the canonical mapping and rejects unknown hand or
// sport labels.
func (r *Ratings) UnmarshalJSON(data []byte) error {
	var raw map[string]map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ratings := make(map[Hand]map[Sport]int, len(raw))
	for rawHand, bySport := range raw {
		hand, ok := ParseHand(rawHand)
		if !ok {
			return fmt.Errorf("unknown hand %q", rawHand)
		}
		ratings[hand] = make(map[Sport]int, len(bySport))
		for rawSport, rating := range bySport {
			sport, ok := ParseSport(rawSport)
			if !ok {
				return fmt.Errorf("unknown sport %q", rawSport)
			}
			ratings[hand][sport] = rating
		}
	}
	if len(ratings) == 0 {
		ratings = nil
	}
	r.ratings = ratings
	return nil
}
