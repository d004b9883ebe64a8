package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Forge holds all configuration for the transmute service.
type Forge struct {
	// Database
	Database DatabaseConfig `yaml:"database"`

	// Transmute policy
	Transmute Transmute `yaml:"transmute"`
}

// Transmute — policy constants рулетки, вынесенные в конфиг для тюнинга
// оператором без пересборки.
type Transmute struct {
	// CatalystItemID — template ID расходуемого Chaos Stone.
	CatalystItemID int32 `yaml:"catalyst_item_id"`

	// UpgradePercent — шанс (1-100) апгрейда в предмет того же класса.
	UpgradePercent int32 `yaml:"upgrade_percent"`

	// UpgradeMaxLevelDelta — максимум item level сверх текущего при апгрейде.
	UpgradeMaxLevelDelta int32 `yaml:"upgrade_max_level_delta"`

	// DowngradePercent — шанс (1-100) даунгрейда в предмет того же типа.
	DowngradePercent int32 `yaml:"downgrade_percent"`

	// MaxModifiers — максимум модификаторов за один empower (1-3).
	MaxModifiers int `yaml:"max_modifiers"`

	// MarkerEnchantID — зарезервированный enchant ID маркера "transmuted".
	MarkerEnchantID int32 `yaml:"marker_enchant_id"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultForge returns Forge config with sensible defaults.
func DefaultForge() Forge {
	return Forge{
		Database: DatabaseConfig{
			Host:    "127.0.0.1",
			Port:    5432,
			User:    "la2forge",
			DBName:  "la2forge",
			SSLMode: "disable",
		},
		Transmute: DefaultTransmute(),
	}
}

// DefaultTransmute returns the default transmute policy.
func DefaultTransmute() Transmute {
	return Transmute{
		CatalystItemID:       8763,
		UpgradePercent:       2,
		UpgradeMaxLevelDelta: 5,
		DowngradePercent:     25,
		MaxModifiers:         3,
		MarkerEnchantID:      900000,
	}
}

// LoadForge reads the yaml config at path, overlaying DefaultForge values.
func LoadForge(path string) (Forge, error) {
	cfg := DefaultForge()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Transmute.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate проверяет допустимость policy значений.
func (t Transmute) Validate() error {
	if t.UpgradePercent < 0 || t.UpgradePercent > 100 {
		return fmt.Errorf("upgrade_percent must be in [0,100], got %d", t.UpgradePercent)
	}
	if t.DowngradePercent < 0 || t.DowngradePercent > 100 {
		return fmt.Errorf("downgrade_percent must be in [0,100], got %d", t.DowngradePercent)
	}
	if t.UpgradeMaxLevelDelta < 0 {
		return fmt.Errorf("upgrade_max_level_delta must be >= 0, got %d", t.UpgradeMaxLevelDelta)
	}
	if t.MaxModifiers < 1 || t.MaxModifiers > 3 {
		return fmt.Errorf("max_modifiers must be in [1,3], got %d", t.MaxModifiers)
	}
	if t.MarkerEnchantID == 0 {
		return fmt.Errorf("marker_enchant_id must be set")
	}
	if t.CatalystItemID == 0 {
		return fmt.Errorf("catalyst_item_id must be set")
	}
	return nil
}
