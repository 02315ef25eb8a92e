// ABOUTME: Registry of entity definitions for the generic engines.
// ABOUTME: Entities register themselves in init() functions.

package entity

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/abmusica/maestro/internal/schema"
)

// Definition describes one managed entity: its identity, table columns and
// the functions that build form/detail descriptors from a record document.
// The generic engines (list controller, admin UI, mock backend, CLI) work on
// documents, so descriptor builders take a map; typed entities wrap their
// builders with FormFunc/DetailFunc.
type Definition struct {
	Name     string // singular display name, used in dialog titles ("Músico")
	Slug     string // registry key, URL segment and store table ("musicians")
	Title    string // list page title ("Músicos")
	Endpoint string // API resource path; empty means same as Slug

	Columns      []schema.Column
	FormFields   func(doc map[string]any) []schema.Field
	DetailFields func(doc map[string]any) []schema.DetailField

	// Derive adds synthetic display fields to a row document before it is
	// filtered, sorted and rendered (e.g. "name" from firstName+lastName).
	Derive func(doc map[string]any)
}

// Resource returns the API path of the definition.
func (d Definition) Resource() string {
	if d.Endpoint != "" {
		return d.Endpoint
	}
	return d.Slug
}

var (
	registry = make(map[string]Definition)
	mu       sync.RWMutex
)

// Register adds an entity definition to the registry
func Register(d Definition) {
	mu.Lock()
	defer mu.Unlock()

	if d.Slug == "" {
		panic("entity definition without slug")
	}
	if _, exists := registry[d.Slug]; exists {
		panic(fmt.Sprintf("entity %q already registered", d.Slug))
	}
	registry[d.Slug] = d
}

// Get retrieves an entity definition by slug
func Get(slug string) (Definition, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := registry[slug]
	return d, ok
}

// All returns all registered definitions, sorted by slug
func All() []Definition {
	mu.RLock()
	defer mu.RUnlock()

	defs := make([]Definition, 0, len(registry))
	for _, d := range registry {
		defs = append(defs, d)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Slug < defs[j].Slug })
	return defs
}

// Slugs returns all registered entity slugs, sorted
func Slugs() []string {
	mu.RLock()
	defer mu.RUnlock()

	slugs := make([]string, 0, len(registry))
	for slug := range registry {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// ToDoc converts a typed entity into its JSON document form.
func ToDoc(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FromDoc converts a JSON document back into a typed entity.
func FromDoc[T any](doc map[string]any) (*T, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, err
	}
	return v, nil
}

// FormFunc adapts a typed form-field builder to the document plane. A nil
// document builds the blank (create) form.
func FormFunc[T any](fn func(*T) []schema.Field) func(map[string]any) []schema.Field {
	return func(doc map[string]any) []schema.Field {
		if doc == nil {
			return fn(nil)
		}
		v, err := FromDoc[T](doc)
		if err != nil {
			return fn(nil)
		}
		return fn(v)
	}
}

// DetailFunc adapts a typed detail-field builder to the document plane.
func DetailFunc[T any](fn func(*T) []schema.DetailField) func(map[string]any) []schema.DetailField {
	return func(doc map[string]any) []schema.DetailField {
		v, err := FromDoc[T](doc)
		if err != nil {
			return nil
		}
		return fn(v)
	}
}
