package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTransmuteValidate(t *testing.T) {
	t.Parallel()

	mutate := func(fn func(*Transmute)) Transmute {
		cfg := DefaultTransmute()
		fn(&cfg)
		return cfg
	}

	tests := []struct {
		name    string
		cfg     Transmute
		wantErr string
	}{
		{name: "defaults valid", cfg: DefaultTransmute()},
		{name: "zero percents allowed", cfg: mutate(func(c *Transmute) { c.UpgradePercent = 0; c.DowngradePercent = 0 })},
		{name: "upgrade percent over 100", cfg: mutate(func(c *Transmute) { c.UpgradePercent = 101 }), wantErr: "upgrade_percent"},
		{name: "negative downgrade percent", cfg: mutate(func(c *Transmute) { c.DowngradePercent = -1 }), wantErr: "downgrade_percent"},
		{name: "negative level delta", cfg: mutate(func(c *Transmute) { c.UpgradeMaxLevelDelta = -1 }), wantErr: "upgrade_max_level_delta"},
		{name: "zero modifiers", cfg: mutate(func(c *Transmute) { c.MaxModifiers = 0 }), wantErr: "max_modifiers"},
		{name: "four modifiers", cfg: mutate(func(c *Transmute) { c.MaxModifiers = 4 }), wantErr: "max_modifiers"},
		{name: "missing marker", cfg: mutate(func(c *Transmute) { c.MarkerEnchantID = 0 }), wantErr: "marker_enchant_id"},
		{name: "missing catalyst", cfg: mutate(func(c *Transmute) { c.CatalystItemID = 0 }), wantErr: "catalyst_item_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadForgeOverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "forge.yml")
	body := `
database:
  host: db.example.net
  password: secret
transmute:
  upgrade_percent: 5
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadForge(path)
	if err != nil {
		t.Fatalf("LoadForge: %v", err)
	}

	if cfg.Database.Host != "db.example.net" {
		t.Errorf("host = %q, want overridden value", cfg.Database.Host)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("port = %d, want default 5432", cfg.Database.Port)
	}
	if cfg.Transmute.UpgradePercent != 5 {
		t.Errorf("upgrade_percent = %d, want overridden 5", cfg.Transmute.UpgradePercent)
	}
	if cfg.Transmute.DowngradePercent != 25 {
		t.Errorf("downgrade_percent = %d, want default 25", cfg.Transmute.DowngradePercent)
	}
}

func TestLoadForgeRejectsInvalidPolicy(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "forge.yml")
	body := "transmute:\n  max_modifiers: 9\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := LoadForge(path); err == nil {
		t.Fatal("LoadForge accepted invalid max_modifiers")
	}
}

func TestLoadForgeMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadForge(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("LoadForge with missing file succeeded")
	}
}

func TestDatabaseDSN(t *testing.T) {
	t.Parallel()

	dsn := DefaultForge().Database.DSN()
	want := "postgres://la2forge:@127.0.0.1:5432/la2forge?sslmode=disable"
	if dsn != want {
		t.Errorf("DSN = %q, want %q", dsn, want)
	}
}
