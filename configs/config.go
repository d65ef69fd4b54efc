package configs

import (
	"errors"

	"github.com/JosuePG/pokemon-trader/internal/logger"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"server"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	JWT struct {
		SECRET string `mapstructure:"secret"`
	} `mapstructure:"jwt"`
	Redis struct {
		Addr         string `mapstructure:"addr"`
		InventoryTTL int    `mapstructure:"inventory_ttl_seconds"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		Topic   string   `mapstructure:"topic"`
		Group   string   `mapstructure:"group"`
	} `mapstructure:"kafka"`
	PokeAPI struct {
		BaseURL      string `mapstructure:"base_url"`
		StarterCount int    `mapstructure:"starter_count"`
	} `mapstructure:"pokeapi"`
	Notifications struct {
		EmailEnabled bool `mapstructure:"email_enabled"`
	} `mapstructure:"notifications"`
}

var AppConfig Config

func LoadConfig() {
	viper.AddConfigPath("./configs")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("redis.inventory_ttl_seconds", 300)
	viper.SetDefault("kafka.topic", "trade.created")
	viper.SetDefault("kafka.group", "pokemon-trader")
	viper.SetDefault("pokeapi.base_url", "https://pokeapi.co/api/v2")
	viper.SetDefault("pokeapi.starter_count", 3)

	viper.AutomaticEnv()

	var fileLookupError viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil {
		if errors.As(err, &fileLookupError) {
			logger.Log.Fatal("config file not found", zap.Error(err))
		}
		logger.Log.Fatal("failed to read config", zap.Error(err))
	}

	viper.Unmarshal(&AppConfig)
}
