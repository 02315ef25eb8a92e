// ABOUTME: Generic CRUD service over the API client.
// ABOUTME: One instance per entity endpoint; strips server-owned keys on write.

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Doc is the schemaless document form of an entity record.
type Doc = map[string]any

// Service provides the CRUD operations of one entity endpoint.
type Service[T any] struct {
	client   *Client
	endpoint string
}

// NewService builds a typed service for an endpoint.
func NewService[T any](client *Client, endpoint string) *Service[T] {
	return &Service[T]{client: client, endpoint: endpoint}
}

// Endpoint returns the resource path the service talks to.
func (s *Service[T]) Endpoint() string { return s.endpoint }

// Client returns the underlying API client.
func (s *Service[T]) Client() *Client { return s.client }

// List fetches all records matching the query.
func (s *Service[T]) List(ctx context.Context, q Query) ([]T, error) {
	var out []T
	if err := s.client.Do(ctx, http.MethodGet, s.endpoint, q.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one record.
func (s *Service[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	out := new(T)
	if err := s.client.Do(ctx, http.MethodGet, s.item(id), nil, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts a new record. Server-owned keys (id, createdAt, updatedAt)
// are stripped from the payload; the created record comes back with them
// assigned.
func (s *Service[T]) Create(ctx context.Context, v T) (*T, error) {
	payload, err := createShape(v)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := s.client.Do(ctx, http.MethodPost, s.endpoint, nil, payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces a record via PUT, with the same payload shape as Create.
func (s *Service[T]) Update(ctx context.Context, id int64, v T) (*T, error) {
	payload, err := createShape(v)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := s.client.Do(ctx, http.MethodPut, s.item(id), nil, payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Patch applies a partial update.
func (s *Service[T]) Patch(ctx context.Context, id int64, partial Doc) (*T, error) {
	out := new(T)
	if err := s.client.Do(ctx, http.MethodPatch, s.item(id), nil, partial, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a record.
func (s *Service[T]) Delete(ctx context.Context, id int64) error {
	return s.client.Do(ctx, http.MethodDelete, s.item(id), nil, nil, nil)
}

func (s *Service[T]) item(id int64) string {
	return fmt.Sprintf("%s/%d", s.endpoint, id)
}

// createShape converts a record to its write payload: the JSON document with
// the server-owned keys removed.
func createShape(v any) (Doc, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, &Error{Status: 0, Message: "encode entity", Cause: err}
	}
	var doc Doc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &Error{Status: 0, Message: "encode entity", Cause: err}
	}
	delete(doc, "id")
	delete(doc, "createdAt")
	delete(doc, "updatedAt")
	return doc, nil
}
