package trade

import "github.com/JosuePG/pokemon-trader/internal/models"

// MaxLevelDifference is the fairness threshold: the absolute difference
// between the two offers' level sums may not exceed it.
const MaxLevelDifference = 20

// Validate reports whether an offer pair is an acceptable trade. Both sides
// must offer at least one pokemon and the level sums must be within
// MaxLevelDifference of each other.
func Validate(requesterPokemon, responderPokemon []models.Pokemon) bool {
	if len(requesterPokemon) == 0 || len(responderPokemon) == 0 {
		return false
	}

	requesterSum := 0
	for _, p := range requesterPokemon {
		requesterSum += p.Level
	}
	responderSum := 0
	for _, p := range responderPokemon {
		responderSum += p.Level
	}

	diff := requesterSum - responderSum
	if diff < 0 {
		diff = -diff
	}
	return diff <= MaxLevelDifference
}
