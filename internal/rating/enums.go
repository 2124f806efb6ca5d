package rating

// Sport is a competitive discipline. It partitions both matches and ratings.
type Sport string

const (
	SportPingPong Sport = "Ping-Pong"
	SportSquash   Sport = "Squash"
)

// Hand marks which hand a player used in a match. Each hand carries its own
// independent rating per sport, which is how handicap play is modeled.
type Hand string

const (
	HandDominant    Hand = "Dominant hand"
	HandNonDominant Hand = "Non-dominant hand"
)

// ParseSport is the safe membership test for untrusted input (e.g. query
// parameters). Internal code uses the constants directly.
func ParseSport(raw string) (Sport, bool) {
	switch Sport(raw) {
	case SportPingPong, SportSquash:
		return Sport(raw), true
	}
	return "", false
}

// ParseHand is the safe membership test for untrusted input.
func ParseHand(raw string) (Hand, bool) {
	switch Hand(raw) {
	case HandDominant, HandNonDominant:
		return Hand(raw), true
	}
	return "", false
}
