package reader

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/vectree/errs"
	"github.com/arloliu/vectree/format"
	"github.com/arloliu/vectree/internal/options"
)

// DefaultVectorField is the reserved field name whose array value is read as
// a vector.
const DefaultVectorField = "$vector"

// DefaultMaxDepth is the default limit on container nesting.
const DefaultMaxDepth = 1000

// DuplicatePolicy decides what happens when an object repeats a field name.
type DuplicatePolicy uint8

const (
	// DuplicateLastWins keeps the last value under the field's first position.
	DuplicateLastWins DuplicatePolicy = iota
	// DuplicateReject fails the read with errs.ErrDuplicateField.
	DuplicateReject
)

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateLastWins:
		return "LastWins"
	case DuplicateReject:
		return "Reject"
	default:
		return "Unknown"
	}
}

// Config holds the settings of a TreeReader. It is fixed once the reader is
// created.
type Config struct {
	floatsAsDecimal bool
	vectorMode      format.VectorMode
	vectorField     string
	duplicates      DuplicatePolicy
	internNames     bool
	logger          *slog.Logger
	maxDepth        int
}

// Option configures a TreeReader.
type Option = options.Option[*Config]

func defaultConfig() Config {
	return Config{
		vectorMode:  format.VectorNativeFloats,
		vectorField: DefaultVectorField,
		duplicates:  DuplicateLastWins,
		internNames: true,
		maxDepth:    DefaultMaxDepth,
	}
}

// WithFloatsAsDecimal makes every float token become a decimal node instead
// of a float64 node. The choice applies to the whole read.
func WithFloatsAsDecimal(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.floatsAsDecimal = enabled
	})
}

// WithVectorMode selects how vector arrays are materialized.
// format.VectorGeneric turns vector detection off.
func WithVectorMode(mode format.VectorMode) Option {
	return options.New(func(c *Config) error {
		if !mode.Valid() {
			return fmt.Errorf("%w: vector mode %d", errs.ErrInvalidOption, mode)
		}
		c.vectorMode = mode

		return nil
	})
}

// WithVectorField changes the reserved vector field name.
func WithVectorField(name string) Option {
	return options.New(func(c *Config) error {
		if name == "" {
			return fmt.Errorf("%w: empty vector field name", errs.ErrInvalidOption)
		}
		c.vectorField = name

		return nil
	})
}

// WithDuplicatePolicy selects the duplicate field name policy.
func WithDuplicatePolicy(policy DuplicatePolicy) Option {
	return options.New(func(c *Config) error {
		if policy > DuplicateReject {
			return fmt.Errorf("%w: duplicate policy %d", errs.ErrInvalidOption, policy)
		}
		c.duplicates = policy

		return nil
	})
}

// WithFieldInterning toggles canonicalization of field names, which makes
// trees built by one reader share a single copy of each repeated key.
func WithFieldInterning(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.internNames = enabled
	})
}

// WithLogger sets a logger for debug events. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		c.logger = logger
	})
}

// WithMaxDepth limits container nesting. Documents nested deeper fail with
// errs.ErrMaxDepth.
func WithMaxDepth(depth int) Option {
	return options.New(func(c *Config) error {
		if depth <= 0 {
			return fmt.Errorf("%w: max depth must be positive, got %d", errs.ErrInvalidOption, depth)
		}
		c.maxDepth = depth

		return nil
	})
}

// FloatsAsDecimal reports whether float tokens become decimal nodes.
func (c Config) FloatsAsDecimal() bool { return c.floatsAsDecimal }

// VectorMode returns the vector materialization mode.
func (c Config) VectorMode() format.VectorMode { return c.vectorMode }

// VectorField returns the reserved vector field name.
func (c Config) VectorField() string { return c.vectorField }

// DuplicatePolicy returns the duplicate field name policy.
func (c Config) DuplicatePolicy() DuplicatePolicy { return c.duplicates }

// MaxDepth returns the nesting limit.
func (c Config) MaxDepth() int { return c.maxDepth }
