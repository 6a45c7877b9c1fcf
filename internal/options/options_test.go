package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type readerConfig struct {
	field   string
	depth   int
	decimal bool
	calls   []string
}

func withField(name string) Option[*readerConfig] {
	return New(func(c *readerConfig) error {
		if name == "" {
			return errors.New("field name cannot be empty")
		}
		c.field = name
		c.calls = append(c.calls, "field")

		return nil
	})
}

func withDepth(n int) Option[*readerConfig] {
	return NoError(func(c *readerConfig) {
		c.depth = n
		c.calls = append(c.calls, "depth")
	})
}

func withDecimal() Option[*readerConfig] {
	return NoError(func(c *readerConfig) {
		c.decimal = true
		c.calls = append(c.calls, "decimal")
	})
}

func TestApply_InOrder(t *testing.T) {
	cfg := &readerConfig{}

	err := Apply(cfg, withField("$vector"), withDepth(8), withDecimal())
	require.NoError(t, err)
	require.Equal(t, "$vector", cfg.field)
	require.Equal(t, 8, cfg.depth)
	require.True(t, cfg.decimal)
	require.Equal(t, []string{"field", "depth", "decimal"}, cfg.calls)
}

func TestApply_LaterOptionWins(t *testing.T) {
	cfg := &readerConfig{}

	require.NoError(t, Apply(cfg, withDepth(1), withDepth(2)))
	require.Equal(t, 2, cfg.depth)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &readerConfig{}

	err := Apply(cfg, withDepth(4), withField(""), withDecimal())
	require.Error(t, err)
	require.Contains(t, err.Error(), "field name cannot be empty")
	require.Equal(t, []string{"depth"}, cfg.calls)
	require.False(t, cfg.decimal)
}

func TestApply_SkipsNil(t *testing.T) {
	cfg := &readerConfig{}

	var conditional Option[*readerConfig]
	require.NoError(t, Apply(cfg, conditional, withDecimal()))
	require.True(t, cfg.decimal)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &readerConfig{depth: 3}

	require.NoError(t, Apply(cfg))
	require.Equal(t, 3, cfg.depth)
}
