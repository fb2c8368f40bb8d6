package arena_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/milk9111/cannonball/arena"
)

func TestMemoryStore(t *testing.T) {
	store := arena.NewMemoryStore()
	if store.Persistent() {
		t.Fatalf("memory store claims to persist")
	}
	if _, err := store.Load("quick"); !errors.Is(err, arena.ErrNoSnapshot) {
		t.Fatalf("err = %v, want ErrNoSnapshot", err)
	}

	snap := midFlight(t).Snapshot()
	if err := store.Save("quick", snap); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !store.Exists("quick") {
		t.Fatalf("slot missing after save")
	}
	got, err := store.Load("quick")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, snap) {
		t.Fatalf("loaded snapshot differs")
	}
}

func TestPersistentStore(t *testing.T) {
	if testing.Short() {
		t.Skip("touches the user data directory")
	}
	store, err := arena.OpenStore("cannonball-test")
	if err != nil {
		t.Skipf("no data directory: %v", err)
	}

	slot := "slot-" + uuid.NewString()
	snap := midFlight(t).Snapshot()
	if err := store.Save(slot, snap); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(slot)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, snap) {
		t.Fatalf("loaded snapshot differs")
	}
}
