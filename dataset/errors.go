package dataset

import "errors"

var (
	// ErrNilTable indicates a nil Table handle was supplied.
	ErrNilTable = errors.New("dataset: table is nil")
	// ErrNoRows indicates the table reports zero rows.
	ErrNoRows = errors.New("dataset: table must have at least one row")
	// ErrStrataNotFound indicates the requested stratification column is absent.
	ErrStrataNotFound = errors.New("dataset: strata column not found")
	// ErrStratumTooSmall indicates a category with fewer than two rows.
	ErrStratumTooSmall = errors.New("dataset: stratum must have at least two rows")
	// ErrColumnLength indicates a Frame column whose length differs from the others.
	ErrColumnLength = errors.New("dataset: all columns must have the same length")
	// ErrColumnCount indicates a Frame constructed with mismatched names/columns.
	ErrColumnCount = errors.New("dataset: column names and columns must align")
	// ErrRowIndex indicates a row index outside [0, NumRows).
	ErrRowIndex = errors.New("dataset: row index out of range")
)
