package arena

import (
	"errors"
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

var ErrNoSnapshot = errors.New("arena: no snapshot in slot")

const snapshotProperty = "snapshot.yaml"

// Store keeps named snapshot slots in the per-user data directory. A Store
// without a manager runs in memory only.
type Store struct {
	manager *gdata.Manager
	memory  map[string][]byte
}

// OpenStore opens the data directory of app. If the platform has no usable
// data directory the store falls back to memory and the error is returned
// alongside it.
func OpenStore(app string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return NewMemoryStore(), fmt.Errorf("arena: open store %q: %w", app, err)
	}
	return &Store{manager: m, memory: make(map[string][]byte)}, nil
}

func NewMemoryStore() *Store {
	return &Store{memory: make(map[string][]byte)}
}

// Persistent reports whether slots survive the process.
func (s *Store) Persistent() bool {
	return s != nil && s.manager != nil
}

func (s *Store) Save(slot string, snap Snapshot) error {
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	if s.manager == nil {
		s.memory[slot] = data
		return nil
	}
	if err := s.manager.SaveObjectProp(slot, snapshotProperty, data); err != nil {
		return fmt.Errorf("arena: save slot %q: %w", slot, err)
	}
	return nil
}

func (s *Store) Exists(slot string) bool {
	if s.manager == nil {
		_, ok := s.memory[slot]
		return ok
	}
	return s.manager.ObjectPropExists(slot, snapshotProperty)
}

func (s *Store) Load(slot string) (Snapshot, error) {
	if !s.Exists(slot) {
		return Snapshot{}, fmt.Errorf("%w: %q", ErrNoSnapshot, slot)
	}
	var data []byte
	if s.manager == nil {
		data = s.memory[slot]
	} else {
		var err error
		data, err = s.manager.LoadObjectProp(slot, snapshotProperty)
		if err != nil {
			return Snapshot{}, fmt.Errorf("arena: load slot %q: %w", slot, err)
		}
	}
	return DecodeSnapshot(data)
}
