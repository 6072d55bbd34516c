package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewConfigAppliesLogSettingsFirst(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("MAX_UPLOAD_MB", "5")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if got := zerolog.GlobalLevel(); got != zerolog.WarnLevel {
		t.Errorf("global level = %v, want warn", got)
	}
	if cfg.Log.Level != "warn" || cfg.Server.Port != "9191" || cfg.Server.MaxUploadMB != 5 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Database.Driver != "postgres" || cfg.GeminiModel == "" {
		t.Errorf("defaults not applied: %+v", cfg.Database)
	}
}
