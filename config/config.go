// Package config is the collaborator layer over the parsing core:
// file loading, configuration inheritance, and typed value accessors.
// The core keeps leaf text opaque; any interpretation of it as
// integers, booleans or durations happens here.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/nccl-format/go-nccl/ir"
	"github.com/nccl-format/go-nccl/parse"
)

// Config wraps a node for convenient reading. The zero of a missing
// lookup is a nil *Config, and all accessors are nil-safe, so lookups
// chain without intermediate checks:
//
//	port, err := cfg.At("server.port").Int()
type Config struct {
	node *ir.Node
}

func New(node *ir.Node) *Config {
	if node == nil {
		return nil
	}
	return &Config{node: node}
}

// Parse builds a Config directly from document text.
func Parse(doc []byte, opts ...parse.ParseOption) (*Config, error) {
	node, err := parse.Parse(doc, opts...)
	if err != nil {
		return nil, err
	}
	return New(node), nil
}

// Node exposes the underlying tree, nil for a missing Config.
func (c *Config) Node() *ir.Node {
	if c == nil {
		return nil
	}
	return c.node
}

// At navigates a dotted path of child names.
func (c *Config) At(path string) *Config {
	if c == nil {
		return nil
	}
	return New(ir.GetPath(c.node, path))
}

func (c *Config) Has(name string) bool {
	return c != nil && c.node.Has(name)
}

// Value returns the name of the sole child. Keys holding zero or
// several values have no single value.
func (c *Config) Value() (string, error) {
	if c == nil {
		return "", ErrKeyNotFound
	}
	if len(c.node.Children) != 1 {
		return "", fmt.Errorf("%w: %d values under %q", ErrNoValue, len(c.node.Children), c.node.Name)
	}
	return c.node.Children[0].Name, nil
}

// Values returns the names of all children in order.
func (c *Config) Values() []string {
	if c == nil {
		return nil
	}
	return c.node.Names()
}

func (c *Config) Int() (int64, error) {
	v, err := c.Value()
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as int: %w", ErrValueParse, v, err)
	}
	return i, nil
}

func (c *Config) Float() (float64, error) {
	v, err := c.Value()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as float: %w", ErrValueParse, v, err)
	}
	return f, nil
}

func (c *Config) Bool() (bool, error) {
	v, err := c.Value()
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %q as bool: %w", ErrValueParse, v, err)
	}
	return b, nil
}

func (c *Config) Duration() (time.Duration, error) {
	v, err := c.Value()
	if err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as duration: %w", ErrValueParse, v, err)
	}
	return d, nil
}
