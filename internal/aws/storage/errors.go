package storage

import "errors"

var (
	// ErrConfiguration marks empty or malformed credentials or region.
	ErrConfiguration = errors.New("invalid dynamodb client configuration")
	// ErrUnsupportedRegion marks a region the SDK does not enumerate.
	ErrUnsupportedRegion = errors.New("unsupported region")

	ErrTableNotFound = errors.New("table not found")
)
