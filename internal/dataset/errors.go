package dataset

import "fmt"

// ParseError indicates the input file is missing, unreadable, or malformed.
type ParseError struct {
	Path string
	Row  int // 1-based data row; 0 when the failure is not row-specific
	Err  error
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("parse %s: row %d: %v", e.Path, e.Row, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ColumnNotFoundError indicates a referenced column is absent from the schema.
type ColumnNotFoundError struct{ Column string }

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}

// EmptyInputError indicates an aggregation attempted over zero rows.
type EmptyInputError struct{ Op string }

func (e *EmptyInputError) Error() string { return fmt.Sprintf("%s: empty input", e.Op) }

// UndefinedError indicates a computation with no defined result, such as the
// mean of a column that holds no numeric values.
type UndefinedError struct {
	Op     string
	Reason string
}

func (e *UndefinedError) Error() string { return fmt.Sprintf("%s undefined: %s", e.Op, e.Reason) }
