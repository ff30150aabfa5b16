package config

import (
	"fmt"
	"os"

	"github.com/nccl-format/go-nccl/merge"
	"github.com/nccl-format/go-nccl/parse"
)

// Load reads and parses one configuration file.
func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return Parse(d, parse.WithFilename(path))
}

// LoadExtends implements configuration inheritance: the overlay file
// extends the base file, with the merged tree as the result. Later
// paths extend the result of the earlier ones.
func LoadExtends(basePath string, overlayPaths ...string) (*Config, error) {
	base, err := Load(basePath)
	if err != nil {
		return nil, err
	}
	res := base.Node()
	for _, p := range overlayPaths {
		overlay, err := Load(p)
		if err != nil {
			return nil, err
		}
		res = merge.Merge(res, overlay.Node())
	}
	return New(res), nil
}
