package device

import (
	"fmt"
	"math/rand"
	"strings"
)

// Pre-computed validation set for O(1) kind lookups.
var validKinds map[Kind]struct{}

func init() {
	validKinds = make(map[Kind]struct{}, len(AllKinds()))
	for _, k := range AllKinds() {
		validKinds[k] = struct{}{}
	}
}

// ValidateKind checks if a kind is valid.
func ValidateKind(kind Kind) error {
	if _, ok := validKinds[kind]; ok {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// ParseKind converts a configuration string to a Kind.
// Matching is case-insensitive and tolerates surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(s)))
	if err := ValidateKind(kind); err != nil {
		return "", err
	}
	return kind, nil
}

// New constructs a device of the given kind.
// Returns ErrInvalidID for non-positive ids and ErrUnknownKind for
// unrecognised kinds. The random source feeds variants with simulated
// readings; Camera ignores it.
func New(kind Kind, id int, rng *rand.Rand) (Device, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	switch kind {
	case KindLight:
		return NewLight(id, rng), nil
	case KindCamera:
		return NewCamera(id), nil
	case KindMotionSensor:
		return NewMotionSensor(id, rng), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
