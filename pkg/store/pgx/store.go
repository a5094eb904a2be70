// Package pgx implements the memorial store on PostgreSQL. The relatives
// list lives on the memorial row as jsonb; the connections table is the
// derived adjacency view kept in sync by the linker.
package pgx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/everkept/memoria/backend/pkg/common"
	"github.com/everkept/memoria/backend/pkg/store"

	pgx5 "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type pgxIConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgx5.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...any) pgx5.Row
}

// MemorialDBStore implements store.MemorialStore over a pgx connection pool.
type MemorialDBStore struct {
	conn pgxIConn
}

// NewMemorialDBStore creates a store using an existing connection or pool.
func NewMemorialDBStore(conn pgxIConn) *MemorialDBStore {
	return &MemorialDBStore{conn: conn}
}

const memorialColumns = "id, name, birth_date, death_date, photo_url, relatives, version"

func scanMemorial(row pgx5.Row) (*common.Memorial, error) {
	var m common.Memorial
	var relatives []byte
	err := row.Scan(&m.ID, &m.Name, &m.BirthDate, &m.DeathDate, &m.PhotoURL, &relatives, &m.Version)
	if err != nil {
		return nil, err
	}
	if len(relatives) > 0 {
		if err := json.Unmarshal(relatives, &m.Relatives); err != nil {
			return nil, fmt.Errorf("failed to decode relatives for %s: %w", m.ID, err)
		}
	}
	return &m, nil
}

func (s *MemorialDBStore) CreateMemorial(ctx context.Context, m *common.Memorial) error {
	relatives, err := json.Marshal(relativesOrEmpty(m.Relatives))
	if err != nil {
		return fmt.Errorf("failed to encode relatives: %w", err)
	}

	_, err = s.conn.Exec(ctx, `
		INSERT INTO memorials (id, name, birth_date, death_date, photo_url, relatives, version)
		VALUES ($1, $2, $3, $4, $5, $6, 1)`,
		m.ID, m.Name, m.BirthDate, m.DeathDate, m.PhotoURL, relatives,
	)
	if err != nil {
		return fmt.Errorf("failed to insert memorial %s: %w", m.ID, err)
	}
	m.Version = 1
	return nil
}

func (s *MemorialDBStore) GetMemorial(ctx context.Context, id string) (*common.Memorial, error) {
	row := s.conn.QueryRow(ctx,
		"SELECT "+memorialColumns+" FROM memorials WHERE id = $1", id)

	m, err := scanMemorial(row)
	if errors.Is(err, pgx5.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// GetMemorials fetches the subset of the given identifiers that exist.
// Missing identifiers are silently absent from the result. Key-sets larger
// than store.MaxBatchSize are split into multiple queries.
func (s *MemorialDBStore) GetMemorials(ctx context.Context, ids []string) ([]*common.Memorial, error) {
	ids = store.DedupeStrings(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	out := make([]*common.Memorial, 0, len(ids))
	err := store.ChunkRange(len(ids), store.MaxBatchSize, func(start, end int) error {
		rows, err := s.conn.Query(ctx,
			"SELECT "+memorialColumns+" FROM memorials WHERE id = ANY($1)", ids[start:end])
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			m, err := scanMemorial(rows)
			if err != nil {
				return err
			}
			out = append(out, m)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateRelatives overwrites the relatives list, guarded by the version the
// caller read. Returns store.ErrVersionConflict when the row moved on, and
// store.ErrNotFound when the memorial does not exist at all.
func (s *MemorialDBStore) UpdateRelatives(
	ctx context.Context,
	id string,
	relatives []common.Relative,
	expectedVersion int64,
) error {
	encoded, err := json.Marshal(relativesOrEmpty(relatives))
	if err != nil {
		return fmt.Errorf("failed to encode relatives: %w", err)
	}

	tag, err := s.conn.Exec(ctx, `
		UPDATE memorials
		SET relatives = $2, version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $3`,
		id, encoded, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update relatives for %s: %w", id, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	err = s.conn.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM memorials WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrNotFound
	}
	return store.ErrVersionConflict
}

func (s *MemorialDBStore) UpsertConnection(
	ctx context.Context,
	ownerID, connectedID, relationship, reciprocal string,
) error {
	_, err := s.conn.Exec(ctx, `
		INSERT INTO connections (owner_id, connected_id, relationship, reciprocal, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (owner_id, connected_id)
		DO UPDATE SET relationship = EXCLUDED.relationship,
		              reciprocal = EXCLUDED.reciprocal,
		              updated_at = now()`,
		ownerID, connectedID, relationship, reciprocal,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert connection %s -> %s: %w", ownerID, connectedID, err)
	}
	return nil
}

// ListMemorialIDs pages through all memorial identifiers in id order.
// Pass the last identifier of the previous page to continue.
func (s *MemorialDBStore) ListMemorialIDs(ctx context.Context, afterID string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.conn.Query(ctx,
		"SELECT id FROM memorials WHERE id > $1 ORDER BY id LIMIT $2", afterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func relativesOrEmpty(relatives []common.Relative) []common.Relative {
	if relatives == nil {
		return []common.Relative{}
	}
	return relatives
}
