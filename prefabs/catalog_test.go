package prefabs

import (
	"errors"
	"maps"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/cannonball/projectile"
)

func TestCatalogMatchesBuiltin(t *testing.T) {
	table, armory, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	builtin := projectile.Builtin()
	if table.Len() != len(builtin) {
		t.Fatalf("types = %d, want %d", table.Len(), len(builtin))
	}
	for _, want := range builtin {
		got, ok := table.Lookup(want.ID)
		if !ok {
			t.Fatalf("missing type %s", want.ID)
		}
		if *got != want {
			t.Fatalf("type %s:\n got %+v\nwant %+v", want.ID, *got, want)
		}
	}

	var ids []string
	for _, want := range projectile.BuiltinAmmo() {
		got, ok := armory.Lookup(want.ID)
		if !ok || got != want {
			t.Fatalf("ammo %s: got %+v, want %+v", want.ID, got, want)
		}
		ids = append(ids, want.ID)
	}
	if !reflect.DeepEqual(armory.IDs(), ids) {
		t.Fatalf("ammo order = %v", armory.IDs())
	}
}

func TestCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		catalog CatalogSpec
		ammo    AmmoCatalogSpec
		want    error
	}{
		{
			name:    "unknown capability",
			catalog: CatalogSpec{Types: []ProjectileTypeSpec{{ID: "standard", Mass: 5, Capabilities: []string{"warp"}}}},
			want:    projectile.ErrUnknownCapability,
		},
		{
			name:    "no standard",
			catalog: CatalogSpec{Types: []ProjectileTypeSpec{{ID: "heavy", Mass: 12}}},
			want:    projectile.ErrNoStandard,
		},
		{
			name:    "zero mass",
			catalog: CatalogSpec{Types: []ProjectileTypeSpec{{ID: "standard"}}},
			want:    projectile.ErrInvalidType,
		},
		{
			name:    "ammo of unknown type",
			catalog: CatalogSpec{Types: []ProjectileTypeSpec{{ID: "standard", Mass: 5}}},
			ammo:    AmmoCatalogSpec{Ammo: []AmmoSpec{{ID: "mystery", Type: "plasma", Damage: 1}}},
			want:    projectile.ErrUnknownType,
		},
		{
			name:    "duplicate ammo",
			catalog: CatalogSpec{Types: []ProjectileTypeSpec{{ID: "standard", Mass: 5}}},
			ammo:    AmmoCatalogSpec{Ammo: []AmmoSpec{{ID: "a", Type: "standard"}, {ID: "a", Type: "standard"}}},
			want:    projectile.ErrDuplicateAmmo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := tt.catalog.Table()
			if err == nil {
				_, err = tt.ammo.Armory(table)
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	override := "types:\n  - {id: standard, gravity: 2, air_resistance: 1, mass: 5, stress_cost: 1}\n"
	if err := os.WriteFile(filepath.Join(dir, CatalogFile), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	table, err := LoadTable()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if table.Len() != 1 || table.Standard().GravityMultiplier != 2 {
		t.Fatalf("override ignored: %d types, gravity %v", table.Len(), table.Standard().GravityMultiplier)
	}
}

func TestLoadScriptPaths(t *testing.T) {
	for _, name := range []string{"barrage.tengo", "scripts/barrage.tengo", "prefabs/scripts/barrage.tengo"} {
		if _, err := LoadScript(name); err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
	}
	names, err := ScriptNames()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) < 2 || names[0] != "barrage.tengo" {
		t.Fatalf("scripts = %v", names)
	}
}

func TestWatcherReportsCatalogEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, AmmoFile)
	if err := os.WriteFile(target, []byte("ammo: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != AmmoFile {
			t.Fatalf("event for %s, want %s", name, AmmoFile)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("no event for %s", target)
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	_ = w.Close()
	if _, ok := <-w.Events; ok {
		t.Fatalf("events channel still open")
	}
}

func TestSettlerReportsAfterQuiet(t *testing.T) {
	start := time.Unix(0, 0)
	at := func(ms int) time.Time { return start.Add(time.Duration(ms) * time.Millisecond) }

	tests := []struct {
		name     string
		touches  map[int][]string
		checkAt  int
		want     []string
		wantNext time.Duration
	}{
		{
			name:    "single_write",
			touches: map[int][]string{0: {AmmoFile}},
			checkAt: 100,
			want:    []string{AmmoFile},
		},
		{
			name:     "burst_waits_for_last_write",
			touches:  map[int][]string{0: {AmmoFile}, 60: {AmmoFile}, 120: {AmmoFile}},
			checkAt:  150,
			wantNext: 70 * time.Millisecond,
		},
		{
			name:    "burst_reported_once_after_last_write",
			touches: map[int][]string{0: {AmmoFile}, 60: {AmmoFile}, 120: {AmmoFile}},
			checkAt: 220,
			want:    []string{AmmoFile},
		},
		{
			name:     "files_settle_independently",
			touches:  map[int][]string{0: {CatalogFile}, 50: {AmmoFile}},
			checkAt:  110,
			want:     []string{CatalogFile},
			wantNext: 40 * time.Millisecond,
		},
		{
			name:    "sorted_by_name",
			touches: map[int][]string{0: {CatalogFile, AmmoFile}},
			checkAt: 500,
			want:    []string{AmmoFile, CatalogFile},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSettler(debounce)
			for _, ms := range slices.Sorted(maps.Keys(tt.touches)) {
				for _, name := range tt.touches[ms] {
					s.touch(name, at(ms))
				}
			}
			got, next := s.due(at(tt.checkAt))
			if !slices.Equal(got, tt.want) {
				t.Fatalf("due = %v, want %v", got, tt.want)
			}
			if next != tt.wantNext {
				t.Fatalf("next = %v, want %v", next, tt.wantNext)
			}
			if again, _ := s.due(at(tt.checkAt)); len(again) != 0 {
				t.Fatalf("settled files reported twice: %v", again)
			}
		})
	}
}

func TestWatcherReportsFinalWriteOfBurst(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	target := filepath.Join(dir, AmmoFile)
	for _, body := range []string{"ammo: []\n", "ammo:\n  - id: iron_cannonball\n"} {
		if err := os.WriteFile(target, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case name := <-w.Events:
		data, err := os.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "iron_cannonball") {
			t.Fatalf("reported before the last write landed: %q", data)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("no event for %s", target)
	}
}
