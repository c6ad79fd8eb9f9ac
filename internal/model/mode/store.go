package mode

// Store exposes mode retrieval for HTTP handlers and the AI service.
type Store interface {
	List() []Mode
	FindByID(id string) (Mode, bool)
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Mode
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied modes.
func NewMemoryStore(items []Mode) *MemoryStore {
	return &MemoryStore{items: append([]Mode(nil), items...)}
}

// List returns the configured mode list.
func (s *MemoryStore) List() []Mode {
	return append([]Mode(nil), s.items...)
}

// FindByID looks up a mode by identifier.
func (s *MemoryStore) FindByID(id string) (Mode, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Mode{}, false
}
