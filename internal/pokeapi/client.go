// Package pokeapi fetches species data from PokeAPI and rolls starter rosters.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/JosuePG/pokemon-trader/internal/models"
)

// MaxPokemonID is the highest species id requested (Gen 8).
const MaxPokemonID = 898

// MaxLevel bounds the random level rolled for a fetched pokemon.
const MaxLevel = 50

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type speciesResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
}

// Species fetches one species by id. The returned pokemon carries no level;
// the caller assigns one.
func (c *Client) Species(ctx context.Context, id int) (models.Pokemon, error) {
	url := fmt.Sprintf("%s/pokemon/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Pokemon{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return models.Pokemon{}, fmt.Errorf("fetch pokemon %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Pokemon{}, fmt.Errorf("fetch pokemon %d: unexpected status %d", id, resp.StatusCode)
	}

	var species speciesResponse
	if err := json.NewDecoder(resp.Body).Decode(&species); err != nil {
		return models.Pokemon{}, fmt.Errorf("decode pokemon %d: %w", id, err)
	}

	return models.Pokemon{
		PokeID: species.ID,
		Name:   species.Name,
		Sprite: species.Sprites.FrontDefault,
	}, nil
}
