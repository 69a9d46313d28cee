package engine

import "errors"

// Sentinel errors returned by the engine. Callers match them with errors.Is.
var (
	ErrTableExists    = errors.New("table already exists")
	ErrTableNotFound  = errors.New("table not found")
	ErrColumnNotFound = errors.New("column not found")
	ErrInvalidType    = errors.New("unsupported column type")
)
