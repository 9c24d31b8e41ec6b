package schema

import "errors"

var (
	ErrInvalidForeignKey   = errors.New("Invalid definition of foreign key.")
	ErrForeignTableColumns = errors.New("Foreign key contains columns from another table.")
	ErrMultipleRefTables   = errors.New("Foreign key references columns from more than one table.")
)

// ConstructionError reports why a foreign key definition was rejected.
// It is recoverable: the caller may drop the key and continue defining the
// table.
type ConstructionError struct {
	Err error
}

func (e *ConstructionError) Error() string { return e.Err.Error() }

func (e *ConstructionError) Unwrap() error { return e.Err }
