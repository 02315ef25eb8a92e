// ABOUTME: Entity record storage: one generic table of JSON documents per resource.
// ABOUTME: Handles CRUD, listing, and server-side search for the mock backend.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = fmt.Errorf("record not found")

// Record is one stored entity document.
type Record struct {
	ID        int64
	Resource  string
	Data      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Doc decodes the JSON document with the server-owned fields merged in.
func (r *Record) Doc() (map[string]any, error) {
	doc := map[string]any{}
	if err := json.Unmarshal([]byte(r.Data), &doc); err != nil {
		return nil, fmt.Errorf("record %d: corrupt data: %w", r.ID, err)
	}
	doc["id"] = r.ID
	doc["createdAt"] = r.CreatedAt.UTC().Format(time.RFC3339)
	doc["updatedAt"] = r.UpdatedAt.UTC().Format(time.RFC3339)
	return doc, nil
}

// CreateRecord inserts a document and returns it with id and timestamps.
func (s *Store) CreateRecord(resource string, doc map[string]any) (*Record, error) {
	data, err := encodeDoc(doc)
	if err != nil {
		return nil, err
	}
	res, err := s.db.Exec(
		"INSERT INTO records (resource, data) VALUES (?, ?)",
		resource, data,
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetRecord(resource, id)
}

// GetRecord fetches one document of a resource.
func (s *Store) GetRecord(resource string, id int64) (*Record, error) {
	r := &Record{}
	var created, updated string
	err := s.db.QueryRow(
		"SELECT id, resource, data, created_at, updated_at FROM records WHERE resource = ? AND id = ?",
		resource, id,
	).Scan(&r.ID, &r.Resource, &r.Data, &created, &updated)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	r.CreatedAt = parseTimestamp(created)
	r.UpdatedAt = parseTimestamp(updated)
	return r, nil
}

// ListRecords returns all documents of a resource in insertion order. A
// non-empty search narrows to records whose JSON contains the term.
func (s *Store) ListRecords(resource, search string) ([]*Record, error) {
	query := "SELECT id, resource, data, created_at, updated_at FROM records WHERE resource = ?"
	args := []any{resource}
	if search != "" {
		query += ` AND data LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeSQLLike(search)+"%")
	}
	query += " ORDER BY id ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		r := &Record{}
		var created, updated string
		if err := rows.Scan(&r.ID, &r.Resource, &r.Data, &created, &updated); err != nil {
			return nil, err
		}
		r.CreatedAt = parseTimestamp(created)
		r.UpdatedAt = parseTimestamp(updated)
		records = append(records, r)
	}
	return records, rows.Err()
}

// UpdateRecord replaces a document wholesale.
func (s *Store) UpdateRecord(resource string, id int64, doc map[string]any) (*Record, error) {
	data, err := encodeDoc(doc)
	if err != nil {
		return nil, err
	}
	res, err := s.db.Exec(
		"UPDATE records SET data = ?, updated_at = CURRENT_TIMESTAMP WHERE resource = ? AND id = ?",
		data, resource, id,
	)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.GetRecord(resource, id)
}

// PatchRecord merges partial fields into an existing document.
func (s *Store) PatchRecord(resource string, id int64, partial map[string]any) (*Record, error) {
	current, err := s.GetRecord(resource, id)
	if err != nil {
		return nil, err
	}
	doc := map[string]any{}
	if err := json.Unmarshal([]byte(current.Data), &doc); err != nil {
		return nil, fmt.Errorf("record %d: corrupt data: %w", id, err)
	}
	for key, value := range partial {
		doc[key] = value
	}
	return s.UpdateRecord(resource, id, doc)
}

// DeleteRecord removes one document.
func (s *Store) DeleteRecord(resource string, id int64) error {
	res, err := s.db.Exec("DELETE FROM records WHERE resource = ? AND id = ?", resource, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountRecords counts the documents of a resource.
func (s *Store) CountRecords(resource string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM records WHERE resource = ?", resource).Scan(&n)
	return n, err
}

// ResetRecords deletes every document of a resource; empty resource wipes all.
func (s *Store) ResetRecords(resource string) error {
	if resource == "" {
		_, err := s.db.Exec("DELETE FROM records")
		return err
	}
	_, err := s.db.Exec("DELETE FROM records WHERE resource = ?", resource)
	return err
}

// encodeDoc serializes a document, dropping the server-owned fields so the
// data column never duplicates the row metadata.
func encodeDoc(doc map[string]any) (string, error) {
	clean := make(map[string]any, len(doc))
	for key, value := range doc {
		switch key {
		case "id", "createdAt", "updatedAt":
			continue
		}
		clean[key] = value
	}
	data, err := json.Marshal(clean)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return string(data), nil
}

// parseTimestamp accepts the formats SQLite emits for CURRENT_TIMESTAMP.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
