package audio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSaveWritesClipAndReturnsURL(t *testing.T) {
	store, err := NewStore(t.TempDir(), 5*time.Minute)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	url, err := store.Save([]byte("fake-mp3-bytes"), "mp3")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !strings.HasPrefix(url, URLPrefix) {
		t.Errorf("url %q does not start with %q", url, URLPrefix)
	}
	if !strings.HasSuffix(url, ".mp3") {
		t.Errorf("url %q does not end with .mp3", url)
	}

	name := strings.TrimPrefix(url, URLPrefix)
	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	if err != nil {
		t.Fatalf("saved clip not readable: %v", err)
	}
	if string(data) != "fake-mp3-bytes" {
		t.Errorf("clip contents = %q, want %q", data, "fake-mp3-bytes")
	}
}

func TestSaveRejectsEmptyClip(t *testing.T) {
	store, err := NewStore(t.TempDir(), 5*time.Minute)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if _, err := store.Save(nil, "mp3"); err == nil {
		t.Fatal("expected error for empty clip")
	}
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store, err := NewStore(t.TempDir(), 5*time.Minute)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	first, err := store.Save([]byte("a"), "mp3")
	if err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	second, err := store.Save([]byte("b"), "mp3")
	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	if first == second {
		t.Errorf("two saves returned the same url: %q", first)
	}
}

func TestSaveDefaultsToMP3Extension(t *testing.T) {
	store, err := NewStore(t.TempDir(), 5*time.Minute)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	url, err := store.Save([]byte("a"), "")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasSuffix(url, ".mp3") {
		t.Errorf("url %q does not default to .mp3", url)
	}
}

func TestSweepRemovesOnlyExpiredClips(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, 5*time.Minute)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	oldPath := filepath.Join(dir, "old.mp3")
	if err := os.WriteFile(oldPath, []byte("old"), 0o644); err != nil {
		t.Fatalf("write old clip: %v", err)
	}
	stale := time.Now().Add(-10 * time.Minute)
	if err := os.Chtimes(oldPath, stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	freshPath := filepath.Join(dir, "fresh.mp3")
	if err := os.WriteFile(freshPath, []byte("fresh"), 0o644); err != nil {
		t.Fatalf("write fresh clip: %v", err)
	}

	removed, err := store.sweep(time.Now())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Error("expired clip still present")
	}
	if _, err := os.Stat(freshPath); err != nil {
		t.Errorf("fresh clip missing: %v", err)
	}
}
