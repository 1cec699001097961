package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"outage_notifier/internal/domain"
)

type PlaceStore struct {
	db *sqlx.DB
}

func NewPlaceStore(db *sqlx.DB) *PlaceStore {
	return &PlaceStore{db: db}
}

// GetAll loads every hierarchy node; the engine rebuilds the forest from
// this on each pass.
func (s *PlaceStore) GetAll(ctx context.Context) ([]domain.PlaceNode, error) {
	var nodes []domain.PlaceNode
	query := `SELECT id, parent_id, kind, name_hy, name_ru, name_en FROM place_nodes`
	if err := s.db.SelectContext(ctx, &nodes, query); err != nil {
		return nil, fmt.Errorf("select place nodes: %w", err)
	}
	return nodes, nil
}

// Similarity runs the trigram search the resolver ranks on. The score of a
// node is the best similarity across its three display names. An empty kinds
// slice searches every level.
func (s *PlaceStore) Similarity(ctx context.Context, query string, kinds []domain.PlaceKind, limit int) ([]domain.ScoredPlace, error) {
	sqlQuery := `
		SELECT id, parent_id, kind, name_hy, name_ru, name_en,
		       GREATEST(similarity(name_hy, $1), similarity(name_ru, $1), similarity(name_en, $1)) AS score
		FROM place_nodes
		WHERE ($2::text[] IS NULL OR kind = ANY($2))
		  AND GREATEST(similarity(name_hy, $1), similarity(name_ru, $1), similarity(name_en, $1)) > 0
		ORDER BY score DESC, id
		LIMIT $3`

	var kindArg interface{}
	if len(kinds) > 0 {
		strs := make([]string, len(kinds))
		for i, k := range kinds {
			strs[i] = string(k)
		}
		kindArg = pq.Array(strs)
	}

	rows, err := s.db.QueryxContext(ctx, sqlQuery, query, kindArg, limit)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	defer rows.Close()

	var out []domain.ScoredPlace
	for rows.Next() {
		var sp domain.ScoredPlace
		if err := rows.Scan(&sp.Node.ID, &sp.Node.ParentID, &sp.Node.Kind,
			&sp.Node.NameHy, &sp.Node.NameRu, &sp.Node.NameEn, &sp.Score); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

// Insert adds one node. Identifier reuse is a data defect and is rejected,
// never overwritten.
func (s *PlaceStore) Insert(ctx context.Context, node *domain.PlaceNode) error {
	query := `
		INSERT INTO place_nodes (id, parent_id, kind, name_hy, name_ru, name_en)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		node.ID, node.ParentID, node.Kind, node.NameHy, node.NameRu, node.NameEn)
	if err != nil {
		return fmt.Errorf("insert place node: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrDuplicateNode
	}
	return nil
}

// DeleteByIDs removes nodes; foreign keys cascade to addresses, tracked
// addresses and announcement links beneath them. The caller passes the full
// subtree computed by the forest.
func (s *PlaceStore) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM place_nodes WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("delete place nodes: %w", err)
	}
	return nil
}
