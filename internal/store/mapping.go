package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// MappingKind distinguishes what category of trigger a mapping binds.
type MappingKind string

const (
	// MappingKindGesture binds a static hand pose label.
	MappingKindGesture MappingKind = "gesture"
	// MappingKindSwipe binds a swipe direction.
	MappingKindSwipe MappingKind = "swipe"
	// MappingKindCircle binds a circular motion direction.
	MappingKindCircle MappingKind = "circle"
)

// Mapping represents one trigger-to-action binding stored in the database.
type Mapping struct {
	ID        string
	Kind      MappingKind
	Trigger   string
	Action    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MappingRepository provides CRUD operations for mappings.
type MappingRepository struct {
	db *sql.DB
}

// Mappings returns the mapping repository for this store.
func (s *Store) Mappings() *MappingRepository {
	return &MappingRepository{db: s.db}
}

// Upsert stores a binding, replacing any existing binding for the same kind
// and trigger. A missing ID is filled in.
func (r *MappingRepository) Upsert(m *Mapping) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	_, err := r.db.Exec(
		`INSERT INTO mappings (id, kind, trigger_key, action, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(kind, trigger_key) DO UPDATE SET
			action = excluded.action,
			updated_at = excluded.updated_at`,
		m.ID, string(m.Kind), m.Trigger, m.Action, m.CreatedAt, m.UpdatedAt,
	)
	return err
}

// Get retrieves a binding by kind and trigger.
func (r *MappingRepository) Get(kind MappingKind, trigger string) (*Mapping, error) {
	m := &Mapping{}
	var kindStr string

	err := r.db.QueryRow(
		`SELECT id, kind, trigger_key, action, created_at, updated_at
		 FROM mappings WHERE kind = ? AND trigger_key = ?`,
		string(kind), trigger,
	).Scan(&m.ID, &kindStr, &m.Trigger, &m.Action, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	m.Kind = MappingKind(kindStr)
	return m, nil
}

// List returns all stored bindings ordered by kind and trigger.
func (r *MappingRepository) List() ([]*Mapping, error) {
	rows, err := r.db.Query(
		`SELECT id, kind, trigger_key, action, created_at, updated_at
		 FROM mappings ORDER BY kind, trigger_key`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Mapping
	for rows.Next() {
		m := &Mapping{}
		var kindStr string
		if err := rows.Scan(&m.ID, &kindStr, &m.Trigger, &m.Action, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		m.Kind = MappingKind(kindStr)
		out = append(out, m)
	}
	return out, rows.Err()
}

// Delete removes a binding by ID.
func (r *MappingRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM mappings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Flat returns every binding as a flat trigger-to-action map, prefixing
// swipe and circle triggers the way the control mapping expects.
func (r *MappingRepository) Flat() (map[string]string, error) {
	mappings, err := r.List()
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(mappings))
	for _, m := range mappings {
		switch m.Kind {
		case MappingKindSwipe:
			out["swipe_"+m.Trigger] = m.Action
		case MappingKindCircle:
			out["circle_"+m.Trigger] = m.Action
		default:
			out[m.Trigger] = m.Action
		}
	}
	return out, nil
}
