package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv(EnvValue, "5")
	t.Setenv(EnvNotify, "every_tick")
	t.Setenv(EnvDebug, "true")
	t.Setenv(EnvAudio, "false")
	t.Setenv(EnvVolume, "0.25")

	cfg := Default()
	if err := cfg.ApplyEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	if cfg.InitialValue != 5 {
		t.Errorf("InitialValue = %d, want 5", cfg.InitialValue)
	}
	if cfg.DragNotify != "every_tick" {
		t.Errorf("DragNotify = %q, want every_tick", cfg.DragNotify)
	}
	if !cfg.Log.Debug {
		t.Error("Log.Debug should be set")
	}
	if cfg.Audio.Enabled {
		t.Error("Audio should be disabled")
	}
	if cfg.Audio.Volume != 0.25 {
		t.Errorf("Volume = %v, want 0.25", cfg.Audio.Volume)
	}
}

func TestApplyEnv_File(t *testing.T) {
	// Clear anything the file sets so godotenv does not skip it
	os.Unsetenv(EnvLogDir)
	t.Cleanup(func() { os.Unsetenv(EnvLogDir) })

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(EnvLogDir+"=/tmp/star-logs\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg := Default()
	if err := cfg.ApplyEnv(path); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Log.Dir != "/tmp/star-logs" {
		t.Errorf("Log.Dir = %q, want /tmp/star-logs", cfg.Log.Dir)
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvValue, "three"},
		{EnvValue, "9"},
		{EnvDebug, "maybe"},
		{EnvVolume, "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg := Default()
			err := cfg.ApplyEnv(filepath.Join(t.TempDir(), "absent.env"))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("ApplyEnv() = %v, want ErrInvalid", err)
			}
		})
	}
}
