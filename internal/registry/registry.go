// Package registry provides a global registry for track templates.
// Templates register themselves in init() functions, allowing the CLI
// and the preview to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/trackgen/internal/config"
)

// Template is a named starting configuration for generation.
type Template interface {
	// ID returns a unique identifier (e.g., "flat", "canyon").
	// Used for CLI flags and the history store.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description is a one-line summary of the terrain.
	Description() string

	// TrackFile returns a fresh copy of the template's configuration.
	TrackFile() config.TrackFile
}

// TemplateInfo contains metadata about a registered template.
type TemplateInfo struct {
	ID          string
	Title       string
	Description string
	Strategy    string
}

// Factory creates a template instance.
type Factory func() Template

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]TemplateInfo)
	mu        sync.RWMutex
)

// Register adds a template factory to the registry.
// Panics if a template with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: template %q already registered", id))
	}

	factories[id] = f

	t := f()
	infos[id] = TemplateInfo{
		ID:          id,
		Title:       t.Title(),
		Description: t.Description(),
		Strategy:    t.TrackFile().Strategy,
	}
}

// List returns information about all registered templates, sorted by ID.
func List() []TemplateInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]TemplateInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// IDs returns the registered template IDs, sorted.
func IDs() []string {
	list := List()
	ids := make([]string, len(list))
	for i, info := range list {
		ids[i] = info.ID
	}
	return ids
}

// Create instantiates a template by its ID.
func Create(id string) (Template, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown template %q", id)
	}

	return f(), nil
}

// Exists checks if a template with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Next returns the template ID that follows id in sorted order, wrapping
// around. An unknown id yields the first template.
func Next(id string) string {
	ids := IDs()
	if len(ids) == 0 {
		return ""
	}
	for i, candidate := range ids {
		if candidate == id {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}

// Prev returns the template ID that precedes id in sorted order, wrapping
// around. An unknown id yields the last template.
func Prev(id string) string {
	ids := IDs()
	if len(ids) == 0 {
		return ""
	}
	for i, candidate := range ids {
		if candidate == id {
			return ids[(i+len(ids)-1)%len(ids)]
		}
	}
	return ids[len(ids)-1]
}

// unregister removes a template. Only used by tests.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, id)
	delete(infos, id)
}
