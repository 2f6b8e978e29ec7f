package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultJWTSecret is the non-production fallback signing secret. Startup
// refuses it outside demo mode.
const DefaultJWTSecret = "goat-demo-secret-do-not-use-in-production"

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Database struct {
		Path string
	}
	Auth struct {
		JWTSecret     string
		TokenTTLHours int
		Demo          bool
		SeedPassword  string
	}
	Storage struct {
		Bucket        string
		Region        string
		Endpoint      string
		URLTTLMinutes int
	}
	AWS struct {
		Profile string
	}
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix("GOAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("database.path", "data/goat.db")
	v.SetDefault("auth.jwtsecret", DefaultJWTSecret)
	v.SetDefault("auth.tokenttlhours", 168)
	v.SetDefault("auth.demo", true)
	v.SetDefault("auth.seedpassword", "password")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.urlttlminutes", 15)
	v.SetDefault("aws.profile", "")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate enforces the fail-closed rule: outside demo mode the signing
// secret must be explicitly configured, never empty or the shipped default.
func (c Config) Validate() error {
	secret := strings.TrimSpace(c.Auth.JWTSecret)
	if secret == "" {
		return fmt.Errorf("auth jwt secret is required")
	}
	if !c.Auth.Demo && secret == DefaultJWTSecret {
		return fmt.Errorf("auth jwt secret must be set explicitly outside demo mode")
	}
	if c.Auth.TokenTTLHours <= 0 {
		return fmt.Errorf("auth token ttl must be positive")
	}
	return nil
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
