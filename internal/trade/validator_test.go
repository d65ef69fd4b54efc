package trade

import (
	"testing"

	"github.com/JosuePG/pokemon-trader/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateEmptySides(t *testing.T) {
	one := []models.Pokemon{{PokeID: 1, Level: 10}}

	assert.False(t, Validate(nil, one))
	assert.False(t, Validate(one, nil))
	assert.False(t, Validate([]models.Pokemon{}, []models.Pokemon{}))
}

func TestValidateLevelDifference(t *testing.T) {
	tests := []struct {
		name      string
		requester []models.Pokemon
		responder []models.Pokemon
		want      bool
	}{
		{
			name:      "small difference",
			requester: []models.Pokemon{{PokeID: 1, Level: 10}},
			responder: []models.Pokemon{{PokeID: 2, Level: 12}},
			want:      true,
		},
		{
			name:      "difference exactly at threshold",
			requester: []models.Pokemon{{PokeID: 1, Level: 30}},
			responder: []models.Pokemon{{PokeID: 2, Level: 10}},
			want:      true,
		},
		{
			name:      "difference above threshold",
			requester: []models.Pokemon{{PokeID: 1, Level: 25}, {PokeID: 3, Level: 15}},
			responder: []models.Pokemon{{PokeID: 2, Level: 15}},
			want:      false,
		},
		{
			name:      "responder side heavier",
			requester: []models.Pokemon{{PokeID: 1, Level: 5}},
			responder: []models.Pokemon{{PokeID: 2, Level: 40}},
			want:      false,
		},
		{
			name:      "sums compared, not counts",
			requester: []models.Pokemon{{PokeID: 1, Level: 10}, {PokeID: 3, Level: 10}},
			responder: []models.Pokemon{{PokeID: 2, Level: 20}},
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.requester, tt.responder))
		})
	}
}
