package frame

import (
	"cosmossdk.io/errors"
)

const ModuleName = "frame"

// Frame errors
var (
	ErrColumnNotFound  = errors.Register(ModuleName, 2, "column not found")
	ErrColumnType      = errors.Register(ModuleName, 3, "column is not numeric")
	ErrLengthMismatch  = errors.Register(ModuleName, 4, "column length mismatch")
	ErrDuplicateColumn = errors.Register(ModuleName, 5, "duplicate column name")
	ErrUnsupportedType = errors.Register(ModuleName, 6, "unsupported column type")
)
