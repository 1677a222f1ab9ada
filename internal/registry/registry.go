// Package registry keeps the board variants available to play. Variants are
// registered at startup from configuration, so the CLI and the menus can
// discover them without hardcoding board sizes.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/snek/internal/game"
)

// Variant is a named board a player can pick.
type Variant struct {
	ID       string
	Title    string
	Settings game.Settings
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant. Settings are validated and IDs must be unique.
func Register(v Variant) error {
	if v.ID == "" {
		return fmt.Errorf("registry: variant without id")
	}
	if err := v.Settings.Validate(); err != nil {
		return fmt.Errorf("registry: variant %q: %w", v.ID, err)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		return fmt.Errorf("registry: variant %q already registered", v.ID)
	}
	if v.Title == "" {
		v.Title = v.ID
	}
	variants[v.ID] = v
	return nil
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the variant with the given ID.
// Returns an error if the ID is not registered.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}

// Reset removes every registered variant.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	variants = make(map[string]Variant)
}
