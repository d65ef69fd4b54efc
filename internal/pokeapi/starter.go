package pokeapi

import (
	"context"
	"math/rand"

	"github.com/JosuePG/pokemon-trader/internal/models"
)

// StarterService rolls the roster handed to a freshly registered user.
type StarterService struct {
	client *Client
	count  int
}

func NewStarterService(client *Client, count int) *StarterService {
	if count <= 0 {
		count = 3
	}
	// More starters than species would make the distinct-id roll loop forever.
	if count > MaxPokemonID {
		count = MaxPokemonID
	}
	return &StarterService{client: client, count: count}
}

// Roll picks distinct random species and assigns each a random level 1-50.
func (s *StarterService) Roll(ctx context.Context) (models.PokemonList, error) {
	ids := make(map[int]struct{}, s.count)
	for len(ids) < s.count {
		ids[rand.Intn(MaxPokemonID)+1] = struct{}{}
	}

	roster := make(models.PokemonList, 0, s.count)
	for id := range ids {
		p, err := s.client.Species(ctx, id)
		if err != nil {
			return nil, err
		}
		p.Level = rand.Intn(MaxLevel) + 1
		roster = append(roster, p)
	}
	return roster, nil
}
