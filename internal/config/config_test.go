package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadServerConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := loadServerConfig()
	if err != nil {
		t.Fatalf("loadServerConfig failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q, want %q", cfg.Addr, ":8080")
	}
}

func TestLoadServerConfigVariants(t *testing.T) {
	tests := []struct {
		value   string
		want    string
		wantErr bool
	}{
		{"9090", ":9090", false},
		{":9090", ":9090", false},
		{"127.0.0.1:9090", "127.0.0.1:9090", false},
		{"bad port", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("PORT", tt.value)

			cfg, err := loadServerConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadServerConfig failed: %v", err)
			}
			if cfg.Addr != tt.want {
				t.Errorf("addr = %q, want %q", cfg.Addr, tt.want)
			}
		})
	}
}

func TestLoadAPIKeyFileMissingIsOptional(t *testing.T) {
	t.Setenv("ZELDA_KEY_FILE", filepath.Join(t.TempDir(), "absent.env"))

	key, err := loadAPIKeyFile()
	if err != nil {
		t.Fatalf("loadAPIKeyFile failed: %v", err)
	}
	if key != "" {
		t.Errorf("key = %q, want empty", key)
	}
}

func TestLoadAPIKeyFileSingleLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zelda_key.env")
	if err := os.WriteFile(path, []byte("  sk-test-123  \n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}
	t.Setenv("ZELDA_KEY_FILE", path)

	key, err := loadAPIKeyFile()
	if err != nil {
		t.Fatalf("loadAPIKeyFile failed: %v", err)
	}
	if key != "sk-test-123" {
		t.Errorf("key = %q, want %q", key, "sk-test-123")
	}
}

func TestLoadAPIKeyFileRejectsMultiline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zelda_key.env")
	if err := os.WriteFile(path, []byte("line-one\nline-two"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}
	t.Setenv("ZELDA_KEY_FILE", path)

	if _, err := loadAPIKeyFile(); err == nil {
		t.Fatal("expected error for multi-line key file")
	}
}

func TestLoadAPIKeyFileRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zelda_key.env")
	if err := os.WriteFile(path, []byte("   \n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}
	t.Setenv("ZELDA_KEY_FILE", path)

	if _, err := loadAPIKeyFile(); err == nil {
		t.Fatal("expected error for empty key file")
	}
}

func TestSpeechConfigFallsBackToFileKey(t *testing.T) {
	t.Setenv("SPEECH_APP_ID", "app-1")
	t.Setenv("SPEECH_ACCESS_TOKEN", "")

	cfg, err := loadSpeechConfig("file-key")
	if err != nil {
		t.Fatalf("loadSpeechConfig failed: %v", err)
	}
	if cfg.AccessToken != "file-key" {
		t.Errorf("access token = %q, want %q", cfg.AccessToken, "file-key")
	}
	if !cfg.Enabled {
		t.Error("speech should be enabled with app id and file key")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.TTSSpeed != 0.9 {
		t.Errorf("tts speed = %v, want 0.9", cfg.TTSSpeed)
	}
}

func TestSpeechConfigDisabledWithoutCredentials(t *testing.T) {
	t.Setenv("SPEECH_APP_ID", "")
	t.Setenv("SPEECH_ACCESS_TOKEN", "")

	cfg, err := loadSpeechConfig("")
	if err != nil {
		t.Fatalf("loadSpeechConfig failed: %v", err)
	}
	if cfg.Enabled {
		t.Error("speech should be disabled without credentials")
	}
}

func TestAIConfigEnvWinsOverFileKey(t *testing.T) {
	t.Setenv("ARK_API_KEY", "env-key")
	t.Setenv("ARK_MODEL", "test-model")

	cfg, err := loadAIConfig("file-key")
	if err != nil {
		t.Fatalf("loadAIConfig failed: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("api key = %q, want %q", cfg.APIKey, "env-key")
	}
	if !cfg.Enabled() {
		t.Error("ai should be enabled with key and model")
	}
}

func TestMediaConfigRejectsShortTTL(t *testing.T) {
	t.Setenv("AUDIO_TTL", "10s")

	if _, err := loadMediaConfig(); err == nil {
		t.Fatal("expected error for TTL under a minute")
	}
}

func TestMediaConfigDefaults(t *testing.T) {
	t.Setenv("AUDIO_TTL", "")
	t.Setenv("AUDIO_DIR", "")

	cfg, err := loadMediaConfig()
	if err != nil {
		t.Fatalf("loadMediaConfig failed: %v", err)
	}
	if cfg.AudioDir != "audio" {
		t.Errorf("audio dir = %q, want %q", cfg.AudioDir, "audio")
	}
	if cfg.AudioTTL != 5*time.Minute {
		t.Errorf("ttl = %v, want 5m", cfg.AudioTTL)
	}
}
