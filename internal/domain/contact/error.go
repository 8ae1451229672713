package contact

import (
	"errors"
)

var (
	ErrCatalogNotFound = errors.New("catalog file not found")
	ErrNotFound        = errors.New("record not found")
	ErrInvalidID       = errors.New("invalid record id")
)
