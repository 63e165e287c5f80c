package config

import (
	"log"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
)

// PlaceholderToken keeps the bot constructible when no real token is configured.
const PlaceholderToken = "123456789:AAAAAAAAAAAAAAAAAAAA_tttttttttttttt"

type Config struct {
	// Token sources, see ResolveToken
	BotToken      string `env:"BLAZOR_BOT_TOKEN"`
	TokenFilePath string `env:"BOT_TOKEN_FILE" envDefault:"bottoken.txt"`

	// Storage
	LogDir        string `env:"LOG_DIR" envDefault:"log"`
	GamesFilePath string `env:"GAMES_FILE_PATH" envDefault:"data/games.json"`

	// Polling
	PollTimeout int  `env:"POLL_TIMEOUT" envDefault:"60"`
	Debug       bool `env:"BOT_DEBUG" envDefault:"false"`
}

func New() *Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}

func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveToken picks the bot token: the private token file first, then
// BLAZOR_BOT_TOKEN, then PlaceholderToken.
func (c *Config) ResolveToken() string {
	if s := readTrim(c.TokenFilePath); s != "" {
		return s
	}
	if s := strings.TrimSpace(c.BotToken); s != "" {
		return s
	}
	return PlaceholderToken
}

func readTrim(path string) string {
	if path == "" {
		return ""
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
