package cart

// Storage is the durable backing for one shopper's cart. Save fully
// overwrites the previously stored state; there is no batching, so the
// last persisted state always equals the in-memory state.
type Storage interface {
	Load() ([]Line, error)
	Save([]Line) error
}

// MemoryStorage keeps the serialized cart in process memory. Used by
// tests and as a reference implementation of the overwrite contract.
type MemoryStorage struct {
	lines []Line
}

func NewMemoryStorage() *MemoryStorage { return &MemoryStorage{} }

func (m *MemoryStorage) Load() ([]Line, error) {
	out := make([]Line, len(m.lines))
	copy(out, m.lines)
	return out, nil
}

func (m *MemoryStorage) Save(lines []Line) error {
	m.lines = make([]Line, len(lines))
	copy(m.lines, lines)
	return nil
}
