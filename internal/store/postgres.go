package store

import (
	"github.com/JosuePG/pokemon-trader/configs"
	"github.com/JosuePG/pokemon-trader/internal/logger"
	"github.com/JosuePG/pokemon-trader/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func NewDB() {
	dsn := configs.AppConfig.DB.DSN
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: false,
	}), &gorm.Config{})
	if err != nil {
		logger.Log.Fatal("failed to connect to database", zap.Error(err))
	}
	DB = db
	logger.Log.Info("connected to the database")
}

func DBMigrate() {
	DB.AutoMigrate(&models.User{}, &models.Trade{}, &models.Notification{})
	logger.Log.Info("migrations loaded")
}
