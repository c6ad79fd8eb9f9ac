package audio

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// URLPrefix is where the HTTP layer mounts the audio directory.
const URLPrefix = "/audio/"

// Store writes synthesized clips to disk under random names and expires
// them after a TTL. Clips are one-shot playback artifacts, not durable
// state, so losing the directory between restarts is fine.
type Store struct {
	dir string
	ttl time.Duration
}

// NewStore creates the audio directory if needed.
func NewStore(dir string, ttl time.Duration) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory %s: %w", dir, err)
	}
	return &Store{dir: dir, ttl: ttl}, nil
}

// Dir returns the backing directory for static file serving.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes one clip and returns its public URL path. Names are random
// so clients cannot guess or collide; callers only save after synthesis
// succeeds, so a file on disk always holds complete audio.
func (s *Store) Save(data []byte, format string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("refusing to save empty audio clip")
	}

	ext := strings.ToLower(strings.TrimSpace(format))
	if ext == "" {
		ext = "mp3"
	}

	name := strings.ReplaceAll(uuid.New().String(), "-", "") + "." + ext
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write audio clip %s: %w", name, err)
	}

	return URLPrefix + name, nil
}

// StartSweeper expires old clips in the background until ctx is done.
// Sweep failures are logged and retried next cycle.
func (s *Store) StartSweeper(ctx context.Context) {
	interval := s.ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed, err := s.sweep(time.Now()); err != nil {
					log.Printf("[audio] sweep failed: %v", err)
				} else if removed > 0 {
					log.Printf("[audio] removed %d expired clips", removed)
				}
			}
		}
	}()
}

// sweep deletes clips older than the TTL and returns how many went away.
func (s *Store) sweep(now time.Time) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list audio directory: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if now.Sub(info.ModTime()) < s.ttl {
			continue
		}

		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			log.Printf("[audio] failed to remove %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}

	return removed, nil
}
