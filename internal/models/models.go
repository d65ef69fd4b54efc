package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

type TradeStatus string

const (
	TradeStatusPending  TradeStatus = "pending"
	TradeStatusAccepted TradeStatus = "accepted"
	TradeStatusRejected TradeStatus = "rejected"
)

// Pokemon is an owned creature instance. It lives embedded in a user's
// roster and in a trade's captured offers, never as its own table.
type Pokemon struct {
	PokeID int    `json:"pokeId"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Sprite string `json:"sprite"`
}

// PokemonList stores a set of Pokemon as a single JSON column.
type PokemonList []Pokemon

func (l PokemonList) Value() (driver.Value, error) {
	if l == nil {
		l = PokemonList{}
	}
	return json.Marshal(l)
}

func (l *PokemonList) Scan(value any) error {
	if value == nil {
		*l = PokemonList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for PokemonList", value)
	}
	return json.Unmarshal(data, l)
}

type User struct {
	gorm.Model
	Username         string      `gorm:"size:50;not null"`
	Email            string      `gorm:"uniqueIndex;size:255;not null"`
	Password         string      `gorm:"size:255" json:"-"`
	Pokemon          PokemonList `gorm:"type:jsonb"`
	TradeCount       int         `gorm:"not null;default:0"`
	SuccessfulTrades int         `gorm:"not null;default:0"`
}

type Trade struct {
	gorm.Model
	RequesterID      uint        `gorm:"index;not null"`
	ResponderID      uint        `gorm:"index;not null"`
	RequesterPokemon PokemonList `gorm:"type:jsonb"`
	ResponderPokemon PokemonList `gorm:"type:jsonb"`
	Status           TradeStatus `gorm:"size:16;index;not null;default:pending"`
}

type NotificationStatus string

const (
	NotificationSuccess NotificationStatus = "success"
	NotificationFailed  NotificationStatus = "failed"
)

// Notification is an append-only delivery audit record.
type Notification struct {
	gorm.Model
	UserID         uint   `gorm:"index;not null"`
	Message        string `gorm:"size:512;not null"`
	EmailAttempted bool
	Status         NotificationStatus `gorm:"size:16"`
}
