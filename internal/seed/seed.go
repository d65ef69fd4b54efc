package seed

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/JosuePG/pokemon-trader/internal/logger"
	"github.com/JosuePG/pokemon-trader/internal/models"
	"github.com/JosuePG/pokemon-trader/internal/pokeapi"
	"github.com/JosuePG/pokemon-trader/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const seedPassword = "password123"

var testUsers = []struct {
	Username string
	Email    string
}{
	{"trainer1", "trainer1@test.com"},
	{"trainer2", "trainer2@test.com"},
	{"trainer3", "trainer3@test.com"},
}

// Run seeds three test users, each with a rolled starter roster. Applied
// once; reruns are skipped.
func Run(starters *pokeapi.StarterService) {
	db := store.DB
	var count int64
	if err := db.Model(&models.User{}).Where("email IN ?", []string{"trainer1@test.com", "trainer2@test.com", "trainer3@test.com"}).Count(&count).Error; err != nil {
		logger.Log.Fatal("seed check failed", zap.Error(err))
	}
	if count >= 3 {
		logger.Log.Info("seed already applied, skipping")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Fatal("failed to hash seed password", zap.Error(err))
	}
	hashed := string(hash)

	ctx := context.Background()
	rosters := make([]models.PokemonList, 0, len(testUsers))
	for range testUsers {
		roster, err := starters.Roll(ctx)
		if err != nil {
			logger.Log.Warn("starter roll failed, seeding empty roster", zap.Error(err))
			roster = models.PokemonList{}
		}
		rosters = append(rosters, roster)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for i, u := range testUsers {
			user := models.User{
				Username: u.Username,
				Email:    u.Email,
				Password: hashed,
				Pokemon:  rosters[i],
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Log.Fatal("seed failed", zap.Error(err))
	}
	logger.Log.Info("seeded 3 test users", zap.String("password", seedPassword))
}
