package graph

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/signadot/graphmap/gomap"
)

var ErrUnknownKind = errors.New("unknown kind")

var (
	mu       sync.RWMutex
	registry = make(map[string]gomap.Kind)
)

func init() {
	for _, k := range []gomap.Kind{
		IdentityTable,
		NamedIdentityTable,
		CategorizedIdentityTable,
		CommentTable,
		NoteTable,
		PhotoTable,
		PhotoTagTable,
		ImageTable,
		PlaceTable,
		LocationTable,
	} {
		if err := Register(k); err != nil {
			panic(err)
		}
	}
}

// Register makes k available to Lookup under its name.
func Register(k gomap.Kind) error {
	if k == nil {
		return fmt.Errorf("cannot register nil kind")
	}
	if k.Name() == "" {
		return fmt.Errorf("kind must have a name")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[k.Name()]; exists {
		return fmt.Errorf("kind %q already registered", k.Name())
	}
	registry[k.Name()] = k
	return nil
}

// Lookup returns the kind registered as name. Names are the Go type names,
// such as "Photo".
func Lookup(name string) (gomap.Kind, error) {
	mu.RLock()
	defer mu.RUnlock()
	k, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Kinds returns the registered kind names in sorted order.
func Kinds() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(registry))
}
