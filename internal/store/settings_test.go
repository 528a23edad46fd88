package store

import (
	"errors"
	"testing"
)

func TestSettings_SetAndGet(t *testing.T) {
	repo := newTestStore(t).Settings()

	if err := repo.Set("cursor_smoothing", "0.5"); err != nil {
		t.Fatalf("failed to set: %v", err)
	}

	value, err := repo.Get("cursor_smoothing")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if value != "0.5" {
		t.Errorf("got %q, want %q", value, "0.5")
	}
}

func TestSettings_SetOverwrites(t *testing.T) {
	repo := newTestStore(t).Settings()

	if err := repo.Set("mouse_speed", "1.0"); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if err := repo.Set("mouse_speed", "1.5"); err != nil {
		t.Fatalf("failed to overwrite: %v", err)
	}

	value, err := repo.Get("mouse_speed")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if value != "1.5" {
		t.Errorf("got %q, want %q", value, "1.5")
	}
}

func TestSettings_GetMissing(t *testing.T) {
	repo := newTestStore(t).Settings()

	_, err := repo.Get("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestSettings_Delete(t *testing.T) {
	repo := newTestStore(t).Settings()

	if err := repo.Set("pinch_threshold", "0.05"); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if err := repo.Delete("pinch_threshold"); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}

	if _, err := repo.Get("pinch_threshold"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v after delete, want ErrNotFound", err)
	}

	// Deleting a missing key is fine.
	if err := repo.Delete("pinch_threshold"); err != nil {
		t.Errorf("second delete failed: %v", err)
	}
}

func TestSettings_All(t *testing.T) {
	repo := newTestStore(t).Settings()

	want := map[string]string{
		"camera_index":     "0",
		"cursor_smoothing": "0.6",
		"scroll_deadzone":  "0.02",
	}
	for k, v := range want {
		if err := repo.Set(k, v); err != nil {
			t.Fatalf("failed to set %q: %v", k, err)
		}
	}

	all, err := repo.All()
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(all) != len(want) {
		t.Fatalf("got %d settings, want %d", len(all), len(want))
	}
	for k, v := range want {
		if all[k] != v {
			t.Errorf("all[%q] = %q, want %q", k, all[k], v)
		}
	}
}
