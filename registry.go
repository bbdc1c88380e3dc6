package typereg

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Provider defines read-only access to a registry of items. This interface
// enables dependency injection and facilitates testing by allowing mock
// implementations to be substituted for the concrete Registry.
type Provider[T any] interface {
	// Get returns the item registered under the normalized key.
	// Returns ErrNotFound if no item matches.
	Get(name string) (T, error)

	// Has reports whether an item is registered under the normalized key.
	Has(name string) bool

	// Len returns the number of registered items.
	Len() int

	// Names returns all registered keys, sorted alphabetically.
	Names() []string
}

// Compile-time check that Registry implements Provider.
var _ Provider[any] = (*Registry[any])(nil)

// Registry associates string keys with caller-owned items of type T,
// typically type references or constructors. Items are stored and returned
// as-is; the registry never invokes them. Safe for concurrent use.
type Registry[T any] struct {
	mu              sync.RWMutex
	items           map[string]T
	caseInsensitive bool
}

// New creates an empty registry. The registry is case-sensitive unless
// constructed with WithCaseInsensitive.
func New[T any](opts ...Option) *Registry[T] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return &Registry[T]{
		items:           make(map[string]T),
		caseInsensitive: s.caseInsensitive,
	}
}

// FromMap creates a registry pre-populated from explicitly keyed items.
// Input keys are visited in sorted order so failures are deterministic.
// Returns ErrDuplicateKey if two input keys normalize to the same key, and
// no registry in that case: construction either fully succeeds or fails.
func FromMap[T any](items map[string]T, opts ...Option) (*Registry[T], error) {
	r := New[T](opts...)
	if err := r.RegisterMap(items); err != nil {
		return nil, fmt.Errorf("from map: %w", err)
	}
	return r, nil
}

// FromSlice creates a registry pre-populated from items keyed by their
// derived type names, in slice order. Returns ErrDuplicateKey if two items
// derive the same normalized key, and no registry in that case.
func FromSlice[T any](items []T, opts ...Option) (*Registry[T], error) {
	r := New[T](opts...)
	if err := r.RegisterSlice(items); err != nil {
		return nil, fmt.Errorf("from slice: %w", err)
	}
	return r, nil
}

// normalize folds name to the registry's canonical key form.
func (r *Registry[T]) normalize(name string) string {
	if r.caseInsensitive {
		return strings.ToLower(name)
	}
	return name
}

// Register adds item under the normalized key. Returns ErrInvalidArgument
// for an empty name or a nil item, and ErrDuplicateKey if the key is
// already taken. Registration never overwrites; use Update to replace.
func (r *Registry[T]) Register(name string, item T) error {
	if name == "" {
		return fmt.Errorf("register: empty key: %w", ErrInvalidArgument)
	}
	if isNilItem(item) {
		return fmt.Errorf("register %q: nil item: %w", name, ErrInvalidArgument)
	}
	key := r.normalize(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[key]; exists {
		return fmt.Errorf("register %q: %w", key, ErrDuplicateKey)
	}
	r.items[key] = item
	return nil
}

// RegisterDerived adds item under its derived type name (see DeriveName).
// Returns ErrInvalidArgument if the item's type has no declared name.
func (r *Registry[T]) RegisterDerived(item T) error {
	name, err := DeriveName(item)
	if err != nil {
		return err
	}
	return r.Register(name, item)
}

// MustRegister is Register that panics on error. Intended for package
// init() blocks where a failed registration is a programming error.
func (r *Registry[T]) MustRegister(name string, item T) {
	if err := r.Register(name, item); err != nil {
		panic(err)
	}
}

// RegisterMap registers every entry of items, visiting keys in sorted order
// and applying Register's rules one entry at a time. On the first failure
// it stops and returns the error; entries registered before the failure
// remain registered. This partial application is a documented contract.
func (r *Registry[T]) RegisterMap(items map[string]T) error {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := r.Register(k, items[k]); err != nil {
			return err
		}
	}
	return nil
}

// RegisterSlice registers every item under its derived type name, in slice
// order. Like RegisterMap, it stops at the first failure and leaves prior
// insertions intact.
func (r *Registry[T]) RegisterSlice(items []T) error {
	for _, item := range items {
		if err := r.RegisterDerived(item); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the item registered under the normalized key.
// Returns ErrNotFound if no item matches.
func (r *Registry[T]) Get(name string) (T, error) {
	key := r.normalize(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[key]
	if !ok {
		var zero T
		return zero, fmt.Errorf("get %q: %w", key, ErrNotFound)
	}
	return item, nil
}

// Has reports whether an item is registered under the normalized key. It is
// the non-failing existence check; Get, Update, and Remove return
// ErrNotFound for absent keys.
func (r *Registry[T]) Has(name string) bool {
	key := r.normalize(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[key]
	return ok
}

// Update replaces the item registered under the normalized key. Returns
// ErrNotFound if the key is absent — Update never creates an entry — and
// ErrInvalidArgument for a nil item.
func (r *Registry[T]) Update(name string, item T) error {
	if isNilItem(item) {
		return fmt.Errorf("update %q: nil item: %w", name, ErrInvalidArgument)
	}
	key := r.normalize(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[key]; !ok {
		return fmt.Errorf("update %q: %w", key, ErrNotFound)
	}
	r.items[key] = item
	return nil
}

// Remove deletes the entry under the normalized key.
// Returns ErrNotFound if no item matches.
func (r *Registry[T]) Remove(name string) error {
	key := r.normalize(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[key]; !ok {
		return fmt.Errorf("remove %q: %w", key, ErrNotFound)
	}
	delete(r.items, key)
	return nil
}

// Clear removes all entries. It always succeeds, including on an empty
// registry.
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.items)
}

// Len returns the number of registered items.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// Names returns all registered keys, sorted alphabetically. The result is a
// snapshot; mutating the registry does not affect a previously returned
// slice.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.items))
	for k := range r.items {
		names = append(names, k)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}
