package config

import "errors"

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrNoValue     = errors.New("no single value associated with key")
	ErrValueParse  = errors.New("could not parse value")
)
