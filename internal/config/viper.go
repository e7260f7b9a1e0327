package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// NewViper reads config.yaml (config.prod.yaml when ENV=production) from the
// working directory. Every key can be overridden from the environment, e.g.
// DATABASE_HOST for database.host. A missing file leaves defaults and env.
func NewViper() *viper.Viper {
	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()
	SetDefaults(config)

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	return config
}

func SetDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "lingua-level")
	config.SetDefault("api.prefork", false)
	config.SetDefault("api.listen", ":8080")
	config.SetDefault("api.cors.origins", "*")

	config.SetDefault("log.level", "info")
	config.SetDefault("log.format", "json")

	config.SetDefault("database.host", "localhost")
	config.SetDefault("database.port", 5432)
	config.SetDefault("database.sslmode", "disable")
	config.SetDefault("database.timezone", "UTC")
	config.SetDefault("database.seed_demo", false)
	config.SetDefault("database.pool.max_open", 20)
	config.SetDefault("database.pool.max_idle", 5)
	config.SetDefault("database.pool.lifetime_minutes", 30)

	config.SetDefault("proficiency.window_days", 30)

	config.SetDefault("pronunciation.max_mistakes", 5)
	config.SetDefault("pronunciation.match_threshold", 0.7)
	config.SetDefault("pronunciation.rule", "accuracy")

	config.SetDefault("llm.provider", "none")
}
