// file: internal/config/config.go
// version: 1.0.0
// guid: 4c8e2a6f-0b3d-4f7a-8e1c-6d9b3f5a7c2e

package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jdfalk/isbndb/isbndb"
)

// Config holds application configuration
type Config struct {
	APIKey   string
	Plan     isbndb.Plan
	Language string
	Page     int
	PageSize int
}

var AppConfig Config

// InitConfig initializes the application configuration
func InitConfig() {
	viper.SetEnvPrefix("isbndb")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("plan", string(isbndb.PlanDefault))
	viper.SetDefault("page", 1)
	viper.SetDefault("page_size", 20)

	AppConfig = Config{
		APIKey:   viper.GetString("api_key"),
		Plan:     isbndb.Plan(viper.GetString("plan")),
		Language: viper.GetString("language"),
		Page:     viper.GetInt("page"),
		PageSize: viper.GetInt("page_size"),
	}

	// Normalize plan
	if AppConfig.Plan == "" {
		AppConfig.Plan = isbndb.PlanDefault
	}
}

// Validate verifies that the loaded configuration can build a client.
func Validate() error {
	if AppConfig.APIKey == "" {
		return fmt.Errorf("API key not specified (set --api-key or ISBNDB_API_KEY)")
	}
	switch AppConfig.Plan {
	case isbndb.PlanDefault, isbndb.PlanPremium, isbndb.PlanPro:
		return nil
	default:
		return fmt.Errorf("unknown plan %q (expected default, premium, or pro)", AppConfig.Plan)
	}
}
