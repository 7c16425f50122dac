package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

var (
	cfgFile = "reversi-term/config.json"
	logDir  = "reversi-term"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	BlackColor        int `json:"black"`
	WhiteColor        int `json:"white"`
	MarkerColor       int `json:"marker"`
	LegalColor        int `json:"legal"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	BlackDisc rune `json:"black"`
	WhiteDisc rune `json:"white"`
	Empty     rune `json:"empty"`
	Candidate rune `json:"candidate"`
	Legal     rune `json:"legal"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	ShowCandidates           bool          `json:"show_candidates" env:"REVERSI_SHOW_CANDIDATES" env-description:"Mark empty cells next to a disc"`
	ShowLegalMoves           bool          `json:"show_legal_moves" env:"REVERSI_SHOW_LEGAL_MOVES" env-description:"Mark the legal moves of the player to move"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// LogConfig controls the debug log, written under the XDG cache directory.
type LogConfig struct {
	Level string `json:"level" env:"REVERSI_LOG_LEVEL" env-description:"Log level (trace, debug, info, warn, error, disabled)"`
	File  string `json:"file" env:"REVERSI_LOG_FILE" env-description:"Log file name inside the cache directory"`
}

type Config struct {
	Theme Theme     `json:"theme"`
	Log   LogConfig `json:"log"`
}

// InitConfig loads the user's config file if there is one, applies
// environment overrides and validates the result.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		if err := cleanenv.ReadEnv(&config); err != nil {
			return nil, &InvalidConfig{err.Error()}
		}
		if err := config.Validate(); err != nil {
			return nil, err
		}
		return &config, nil
	}
	return LoadFile(absPath)
}

// LoadFile reads the config at path on top of the defaults, then applies
// environment overrides.
func LoadFile(path string) (*Config, error) {
	config := DefaultConfig
	if err := cleanenv.ReadConfig(path, &config); err != nil {
		return nil, &InvalidConfig{err.Error()}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.BlackDisc, c.Theme.Symbols.WhiteDisc, c.Theme.Symbols.Empty, c.Theme.Symbols.Candidate, c.Theme.Symbols.Legal} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	if c.Log.File != "" && filepath.Base(c.Log.File) != c.Log.File {
		return &InvalidConfig{"log file must be a plain file name"}
	}
	return nil
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// LogPath returns the log file location, creating its directory.
func (c *Config) LogPath() (string, error) {
	return xdg.CacheFile(filepath.Join(logDir, c.Log.File))
}

// Save writes the config to the user's config directory.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm os.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}
