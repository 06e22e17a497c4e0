package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative arc cost was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Unreachable is the distance reported for vertices not reachable from Source.
const Unreachable = int64(math.MaxInt64)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           - starting vertex ID (must be non-empty and present in the graph).
// ReturnPath       - if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      - vertices farther than this are not explored (≥ 0).
// InfEdgeThreshold - arcs with cost ≥ this threshold are impassable (> 0).
// MinCapacity      - arcs with capacity below this are ignored (0 keeps all arcs).
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
	MinCapacity      int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats arcs with cost ≥ threshold as non-traversable.
// Panics with ErrBadInfThreshold on zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithMinCapacity ignores arcs whose capacity is below c.
func WithMinCapacity(c int64) Option {
	return func(o *Options) {
		o.MinCapacity = c
	}
}

// DefaultOptions returns Options initialized with defaults for the given source:
// no path, no distance cap, no impassable arcs, every arc eligible.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
