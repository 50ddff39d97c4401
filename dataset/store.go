// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: SQLite persistence of a network (modernc.org/sqlite, pure Go).
// Policy:
//   - Schema: nodes(id, attrs), edges(seq, from_id, to_id, attrs); attrs are YAML text.
//   - Floats are written with an explicit !!float tag, so 110 and 110.0 load back
//     as int and float64 respectively. Rows written as JSON still decode.
//   - Save replaces the stored network in one transaction.
//   - Load returns edges in seq order, so a round trip keeps edge order.

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/gridtopo/core"
)

const schemaVersion = 1

const pragmas = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

// dsn turns a file path into a SQLite URI; reserved characters in the path
// ('?', '#', '%') are escaped so they are not read as query or fragment.
func dsn(path string) string {
	return "file:" + url.PathEscape(path) + "?" + pragmas
}

// Store is a network persisted in one SQLite file.
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore opens (or creates) the SQLite file at path and migrates its schema.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("dataset: ping %s: %w", path, err)
	}
	s := &Store{db: db, path: path}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("dataset: migrate %s: %w", path, err)
	}

	return s, nil
}

// Path returns the file the store was opened on.
func (s *Store) Path() string { return s.path }

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	version := 0
	// A missing table leaves version at 0.
	_ = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < schemaVersion {
		_, err := s.db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS nodes (
				id    INTEGER PRIMARY KEY,
				attrs TEXT
			);

			CREATE TABLE IF NOT EXISTS edges (
				seq     INTEGER PRIMARY KEY,
				from_id INTEGER NOT NULL REFERENCES nodes(id),
				to_id   INTEGER NOT NULL REFERENCES nodes(id),
				attrs   TEXT
			);
			CREATE INDEX IF NOT EXISTS idx_edges_from ON edges(from_id);
			CREATE INDEX IF NOT EXISTS idx_edges_to ON edges(to_id);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return err
		}
	}

	return nil
}

// Save replaces the stored network with g.
func (s *Store) Save(ctx context.Context, g *core.Graph) (err error) {
	if g == nil {
		return fmt.Errorf("dataset: save: %w", core.ErrInvalidGraph)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("dataset: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM edges"); err != nil {
		return fmt.Errorf("dataset: clear edges: %w", err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM nodes"); err != nil {
		return fmt.Errorf("dataset: clear nodes: %w", err)
	}

	nodeStmt, err := tx.PrepareContext(ctx, "INSERT INTO nodes (id, attrs) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("dataset: prepare nodes: %w", err)
	}
	defer nodeStmt.Close()
	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		attrs, encErr := encodeAttrs(v.Attrs)
		if encErr != nil {
			return fmt.Errorf("dataset: node %d: %w", id, encErr)
		}
		if _, err = nodeStmt.ExecContext(ctx, id, attrs); err != nil {
			return fmt.Errorf("dataset: insert node %d: %w", id, err)
		}
	}

	edgeStmt, err := tx.PrepareContext(ctx, "INSERT INTO edges (seq, from_id, to_id, attrs) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("dataset: prepare edges: %w", err)
	}
	defer edgeStmt.Close()
	for _, e := range g.Edges() {
		attrs, encErr := encodeAttrs(e.Attrs)
		if encErr != nil {
			return fmt.Errorf("dataset: edge #%d: %w", e.Index, encErr)
		}
		if _, err = edgeStmt.ExecContext(ctx, e.Index, e.From, e.To, attrs); err != nil {
			return fmt.Errorf("dataset: insert edge #%d: %w", e.Index, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("dataset: commit: %w", err)
	}

	return nil
}

// Load reads the stored network. An empty store yields core.ErrInvalidGraph.
func (s *Store) Load(ctx context.Context) (*core.Graph, error) {
	var vertices []core.Vertex
	rows, err := s.db.QueryContext(ctx, "SELECT id, attrs FROM nodes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("dataset: query nodes: %w", err)
	}
	for rows.Next() {
		var (
			id  int
			raw sql.NullString
		)
		if err := rows.Scan(&id, &raw); err != nil {
			rows.Close()
			return nil, fmt.Errorf("dataset: scan node: %w", err)
		}
		attrs, err := decodeAttrs(raw)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("dataset: node %d: %w", id, err)
		}
		vertices = append(vertices, core.Vertex{ID: id, Attrs: attrs})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("dataset: nodes: %w", err)
	}
	rows.Close()

	var edges []core.Edge
	rows, err = s.db.QueryContext(ctx, "SELECT seq, from_id, to_id, attrs FROM edges ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("dataset: query edges: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			seq, from, to int
			raw           sql.NullString
		)
		if err := rows.Scan(&seq, &from, &to, &raw); err != nil {
			return nil, fmt.Errorf("dataset: scan edge: %w", err)
		}
		attrs, err := decodeAttrs(raw)
		if err != nil {
			return nil, fmt.Errorf("dataset: edge #%d: %w", seq, err)
		}
		edges = append(edges, core.Edge{From: from, To: to, Attrs: attrs})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dataset: edges: %w", err)
	}

	return core.NewGraph(vertices, edges)
}

func encodeAttrs(attrs map[string]any) (sql.NullString, error) {
	if len(attrs) == 0 {
		return sql.NullString{}, nil
	}
	b, err := yaml.Marshal(tagFloats(attrs))
	if err != nil {
		return sql.NullString{}, err
	}

	return sql.NullString{String: string(b), Valid: true}, nil
}

func decodeAttrs(raw sql.NullString) (map[string]any, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	var attrs map[string]any
	if err := yaml.Unmarshal([]byte(raw.String), &attrs); err != nil {
		return nil, fmt.Errorf("%w: attrs: %w", ErrMalformed, err)
	}

	return compact(attrs), nil
}

// floatAttr marshals with an explicit !!float tag; plain yaml.v3 output
// writes 110.0 as "110", which reads back as an int.
type floatAttr float64

func (f floatAttr) MarshalYAML() (any, error) {
	var s string
	switch v := float64(f); {
	case math.IsNaN(v):
		s = ".nan"
	case math.IsInf(v, 1):
		s = ".inf"
	case math.IsInf(v, -1):
		s = "-.inf"
	default:
		s = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}, nil
}

// tagFloats copies v, wrapping every float64 in floatAttr.
func tagFloats(v any) any {
	switch t := v.(type) {
	case float64:
		return floatAttr(t)
	case float32:
		return floatAttr(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = tagFloats(e)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(t))
		for k, e := range t {
			out[k] = tagFloats(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = tagFloats(e)
		}
		return out
	default:
		return v
	}
}
