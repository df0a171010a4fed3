package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeSingle = "single"
	ModeMulti  = "multi"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode     string   `yaml:"mode" env:"GAME_MODE" env-default:"single"`
	Player   Player   `yaml:"player" env-prefix:"PLAYER_"`
	Opponent Player   `yaml:"opponent" env-prefix:"OPPONENT_"`
	Terminal Terminal `yaml:"terminal"`
}

type Player struct {
	Name string `yaml:"name" env:"NAME"`
}

type Terminal struct {
	Prompt      string `yaml:"prompt" env-default:"> "`
	HistoryFile string `yaml:"history-file" env:"HISTORY_FILE"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the file at path and applies environment overrides on top of it.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	config.setDefaultNames()

	return config, nil
}

// both names share the Player struct, so their defaults can't live in its tags.
func (that *Config) setDefaultNames() {
	if that.Player.Name == "" {
		that.Player.Name = "Player"
	}

	if that.Opponent.Name == "" {
		that.Opponent.Name = "Opponent"
	}
}
