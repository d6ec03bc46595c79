package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Port string
	}
	DB struct {
		Path string
	}
	Log struct {
		Level string
	}
	Session struct {
		SigningKey string
	}
	Genai struct {
		APIKey  string
		Model   string
		BaseURL string
	}
}

// Load reads configuration from environment variables and an optional
// configs/config.yml. A .env file in the working directory is applied
// first so secrets can live beside the binary.
func Load() (Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix("QACHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Secrets also honor their historical unprefixed names.
	_ = v.BindEnv("genai.apikey", "QACHAT_GENAI_APIKEY", "GENAI_API_KEY")
	_ = v.BindEnv("session.signingkey", "QACHAT_SESSION_SIGNINGKEY", "SECRET_KEY")

	v.SetDefault("server.port", "8080")
	v.SetDefault("db.path", "data/qachat.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("genai.model", "gemini-1.5-flash")
	v.SetDefault("genai.baseurl", "")

	v.SetConfigName("config")
	v.AddConfigPath("configs")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Session.SigningKey == "" {
		return Config{}, fmt.Errorf("session signing key is required (set SECRET_KEY)")
	}

	return cfg, nil
}

func loadDotEnv() {
	file, err := os.Open(".env")
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		partsIndex := strings.Index(line, "=")
		if partsIndex <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:partsIndex])
		value := strings.TrimSpace(line[partsIndex+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
