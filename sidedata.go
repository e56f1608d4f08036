package fsm

import (
	"fmt"

	"github.com/playloop/fsm/animation"
)

// DataKey is a typed key into a state's side-data bag. Each key statically
// binds a name to a value type, so retrieval is type-checked without
// reflection. Keys with the same name but different types collide on the
// name; declare keys as package-level variables.
type DataKey[T any] struct {
	name string
}

// NewDataKey creates a typed side-data key.
func NewDataKey[T any](name string) DataKey[T] {
	return DataKey[T]{name: name}
}

// Name returns the key's name.
func (k DataKey[T]) Name() string {
	return k.name
}

// AnimationKey is the side-data entry the machine hands to the configured
// animation player when entering a state.
var AnimationKey = NewDataKey[animation.Descriptor]("animation") //nolint:gochecknoglobals

// SetData stores a value in the state's side-data bag. The engine does not
// interpret entries except for AnimationKey.
func SetData[T any](state *State, key DataKey[T], value T) {
	state.data[key.name] = value
}

// GetData retrieves a typed value from the state's side-data bag.
// It returns ErrDataNotFound when no entry exists and ErrWrongDataType when
// the entry holds a different type than the key's.
func GetData[T any](state *State, key DataKey[T]) (T, error) {
	raw, ok := state.data[key.name]
	if !ok {
		var zero T

		return zero, fmt.Errorf("%w: %s", ErrDataNotFound, key.name)
	}

	value, ok := raw.(T)
	if !ok {
		return value, fmt.Errorf("%w: key %s holds %T, requested %T", ErrWrongDataType, key.name, raw, value)
	}

	return value, nil
}

// DeleteData removes a side-data entry. Removing a missing entry is a no-op.
func DeleteData[T any](state *State, key DataKey[T]) {
	delete(state.data, key.name)
}

// HasData reports whether the state carries an entry for the key,
// regardless of its type.
func HasData[T any](state *State, key DataKey[T]) bool {
	_, ok := state.data[key.name]

	return ok
}
