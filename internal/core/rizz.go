package core

// RizzStore accumulates reputation scores per visible id. Scores are global
// across channels, keyed by display handle rather than connection, and live
// only for the server process. Handle reuse therefore pools reputation under
// one name; that is inherited behavior, not a defect.
type RizzStore struct {
	scores map[string]int
}

// NewRizzStore constructs an empty store.
func NewRizzStore() *RizzStore {
	return &RizzStore{scores: make(map[string]int)}
}

// Give increments an identity's score by one and returns the new value.
func (r *RizzStore) Give(visibleID string) int {
	r.scores[visibleID]++
	return r.scores[visibleID]
}

// Score returns the current score, zero for unknown identities.
func (r *RizzStore) Score(visibleID string) int {
	return r.scores[visibleID]
}

// RizzTier is a display badge level derived from a score.
type RizzTier string

const (
	RizzTierNone      RizzTier = ""
	RizzTierBronze    RizzTier = "bronze"
	RizzTierSilver    RizzTier = "silver"
	RizzTierGold      RizzTier = "gold"
	RizzTierDiamond   RizzTier = "diamond"
	RizzTierLegendary RizzTier = "legendary"
)

// TierFor maps a score to its badge tier, first match from highest. Scores
// of five and below render no badge.
func TierFor(score int) RizzTier {
	switch {
	case score > 100:
		return RizzTierLegendary
	case score >= 51:
		return RizzTierDiamond
	case score >= 31:
		return RizzTierGold
	case score >= 16:
		return RizzTierSilver
	case score >= 6:
		return RizzTierBronze
	default:
		return RizzTierNone
	}
}
