package store

import (
	"errors"
	"testing"
)

func TestMappings_UpsertAndGet(t *testing.T) {
	repo := newTestStore(t).Mappings()

	m := &Mapping{Kind: MappingKindGesture, Trigger: "POINT", Action: "move_cursor"}
	if err := repo.Upsert(m); err != nil {
		t.Fatalf("failed to upsert: %v", err)
	}
	if m.ID == "" {
		t.Fatal("upsert did not assign an ID")
	}

	got, err := repo.Get(MappingKindGesture, "POINT")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if got.Action != "move_cursor" {
		t.Errorf("got action %q, want move_cursor", got.Action)
	}
	if got.Kind != MappingKindGesture {
		t.Errorf("got kind %q, want gesture", got.Kind)
	}
}

func TestMappings_UpsertReplacesAction(t *testing.T) {
	repo := newTestStore(t).Mappings()

	if err := repo.Upsert(&Mapping{Kind: MappingKindSwipe, Trigger: "LEFT", Action: "navigate_back"}); err != nil {
		t.Fatalf("failed to upsert: %v", err)
	}
	if err := repo.Upsert(&Mapping{Kind: MappingKindSwipe, Trigger: "LEFT", Action: "undo"}); err != nil {
		t.Fatalf("failed to re-upsert: %v", err)
	}

	got, err := repo.Get(MappingKindSwipe, "LEFT")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if got.Action != "undo" {
		t.Errorf("got action %q, want undo", got.Action)
	}

	all, err := repo.List()
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d mappings, want 1", len(all))
	}
}

func TestMappings_GetMissing(t *testing.T) {
	repo := newTestStore(t).Mappings()

	_, err := repo.Get(MappingKindCircle, "CLOCKWISE")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestMappings_Delete(t *testing.T) {
	repo := newTestStore(t).Mappings()

	m := &Mapping{Kind: MappingKindGesture, Trigger: "VICTORY", Action: "double_click"}
	if err := repo.Upsert(m); err != nil {
		t.Fatalf("failed to upsert: %v", err)
	}

	if err := repo.Delete(m.ID); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if _, err := repo.Get(MappingKindGesture, "VICTORY"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v after delete, want ErrNotFound", err)
	}

	if err := repo.Delete(m.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v deleting twice, want ErrNotFound", err)
	}
}

func TestMappings_Flat(t *testing.T) {
	repo := newTestStore(t).Mappings()

	seed := []*Mapping{
		{Kind: MappingKindGesture, Trigger: "POINT", Action: "move_cursor"},
		{Kind: MappingKindSwipe, Trigger: "LEFT", Action: "navigate_back"},
		{Kind: MappingKindCircle, Trigger: "CLOCKWISE", Action: "redo"},
	}
	for _, m := range seed {
		if err := repo.Upsert(m); err != nil {
			t.Fatalf("failed to upsert %q: %v", m.Trigger, err)
		}
	}

	flat, err := repo.Flat()
	if err != nil {
		t.Fatalf("failed to flatten: %v", err)
	}

	want := map[string]string{
		"POINT":            "move_cursor",
		"swipe_LEFT":       "navigate_back",
		"circle_CLOCKWISE": "redo",
	}
	if len(flat) != len(want) {
		t.Fatalf("got %d entries, want %d", len(flat), len(want))
	}
	for k, v := range want {
		if flat[k] != v {
			t.Errorf("flat[%q] = %q, want %q", k, flat[k], v)
		}
	}
}
