package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode   string `mapstructure:"mode"`
	Dotenv string `mapstructure:"dotenv"`
	Server struct {
		HTTPPort    string        `mapstructure:"HTTPPort"`
		MetricsPort string        `mapstructure:"MetricsPort"`
		Timeout     time.Duration `mapstructure:"HTTPTimeout"`
	} `mapstructure:"server"`
	Providers struct {
		NominatimURL  string `mapstructure:"nominatimURL"`
		OpenMeteoURL  string `mapstructure:"openMeteoURL"`
		OverpassURL   string `mapstructure:"overpassURL"`
		EventbriteURL string `mapstructure:"eventbriteURL"`
		EventbriteKey string `mapstructure:"eventbriteKey"`
		SearchRadius  int    `mapstructure:"searchRadiusMeters"`
	} `mapstructure:"providers"`
	Geocoding struct {
		FuzzyThreshold float64 `mapstructure:"fuzzyThreshold"`
	} `mapstructure:"geocoding"`
	LLM struct {
		GeminiModel string  `mapstructure:"geminiModel"`
		OpenAIModel string  `mapstructure:"openAIModel"`
		OpenAIURL   string  `mapstructure:"openAIURL"`
		Temperature float64 `mapstructure:"temperature"`
	} `mapstructure:"llm"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	// Add file-based config paths
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// Try to load file-based config
	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %s", err)
		}
	}

	// Unmarshal the config into the Config struct
	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %s", err)
	}
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}
