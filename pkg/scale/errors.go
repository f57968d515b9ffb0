package scale

import (
	"cosmossdk.io/errors"

	"dfscaler/pkg/frame"
)

const ModuleName = "scale"

// Standardizer errors
var (
	ErrInvalidTable     = errors.Register(ModuleName, 2, "invalid table")
	ErrNotFitted        = errors.Register(ModuleName, 3, "standardizer is not fitted")
	ErrSelectorConflict = errors.Register(ModuleName, 4, "include and exclude are mutually exclusive")
	ErrInvalidDDOF      = errors.Register(ModuleName, 5, "ddof must be non-negative")
	ErrInvalidParams    = errors.Register(ModuleName, 6, "invalid standardizer parameters")

	// Column lookups are delegated to the frame, so its kinds are the ones
	// returned here.
	ErrColumnNotFound = frame.ErrColumnNotFound
	ErrColumnType     = frame.ErrColumnType
)
