package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const MaxBoardSize = 9

var (
	ErrInvalidBoardSize    = errors.New("board size is out of range")
	ErrEmptyPlayerName     = errors.New("player name is empty")
	ErrDuplicatePlayerName = errors.New("players must have different names")
)

type Config struct {
	LogLevel     string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	BoardSize    int    `yaml:"board-size" env:"TICTACTOE_BOARD_SIZE" env-default:"3"`
	Seed         uint64 `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
	InputPath    string `yaml:"input-path" env:"TICTACTOE_INPUT_PATH" env-default:""`
	NoColor      bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR" env-default:"false"`
	FirstPlayer  Player `yaml:"first-player" env-prefix:"TICTACTOE_FIRST_"`
	SecondPlayer Player `yaml:"second-player" env-prefix:"TICTACTOE_SECOND_"`
}

type Player struct {
	Name      string `yaml:"name" env:"NAME"`
	Automatic bool   `yaml:"automatic" env:"AUTOMATIC"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	config.applyPlayerDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// applyPlayerDefaults - a missing player section means a human against the computer.
func (that *Config) applyPlayerDefaults() {
	if that.FirstPlayer == (Player{}) {
		that.FirstPlayer = Player{Name: "Player"}
	}

	if that.SecondPlayer == (Player{}) {
		that.SecondPlayer = Player{Name: "Computer", Automatic: true}
	}
}

func (that *Config) Validate() error {
	if that.BoardSize < 1 || that.BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidBoardSize, that.BoardSize, MaxBoardSize)
	}

	if that.FirstPlayer.Name == "" || that.SecondPlayer.Name == "" {
		return ErrEmptyPlayerName
	}

	if that.FirstPlayer.Name == that.SecondPlayer.Name {
		return fmt.Errorf("%w: %s", ErrDuplicatePlayerName, that.FirstPlayer.Name)
	}

	return nil
}
