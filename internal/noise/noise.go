// Package noise provides the seedable coherent 2D noise fields that shape
// terrain and zones.
package noise

import (
	"errors"
	"fmt"
	"strings"
)

// Source is a seedable coherent 2D noise field. Sample is continuous in (u, v),
// stays within [-1, 1] and repeats for identical input until the next Seed.
type Source interface {
	Seed()
	Sample(u, v float64) float64
}

// Seeder supplies the seed drawn on every Seed call.
type Seeder interface {
	Int64() int64
}

// Kind names a noise backend.
type Kind string

const (
	KindPerlin  Kind = "perlin"
	KindSimplex Kind = "simplex"
)

// ErrUnknownKind is returned for backend names that are not registered.
var ErrUnknownKind = errors.New("noise: unknown kind")

// Kinds lists the supported backends.
func Kinds() []Kind { return []Kind{KindPerlin, KindSimplex} }

// ParseKind resolves a backend name; the empty string selects perlin.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindPerlin:
		return KindPerlin, nil
	case KindSimplex:
		return KindSimplex, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// New builds a source of the given kind drawing its seeds from seeds.
func New(kind Kind, seeds Seeder) (Source, error) {
	if seeds == nil {
		return nil, errors.New("noise: nil seeder")
	}
	switch kind {
	case "", KindPerlin:
		return NewPerlin(seeds), nil
	case KindSimplex:
		return NewSimplex(seeds), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
