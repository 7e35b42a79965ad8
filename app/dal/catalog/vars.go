package catalog

import "errors"

var (
	ErrDuplicateId  = errors.New("duplicate product id")
	ErrInvalidEnum  = errors.New("invalid enum value")
	ErrEmptyCatalog = errors.New("catalog is empty")
)

// Sentinels the storefront and the reasoning service use for "no constraint".
const (
	SentinelAny = "Any"
	SentinelAll = "All"
)
