package dataset

import (
	"fmt"
	"sort"
)

// Universe fixes the row identity of one dataset: its row count and,
// optionally, the grouping of row indices by one categorical column.
// A Universe is immutable after New returns; every accessor hands out
// copies so no caller can disturb a plan already built on top of it.
type Universe struct {
	table Table
	n     int

	strataCol string
	strata    map[string][]int // category → ascending row indices
	cats      []string         // sorted category names, the canonical iteration order
}

// Option customizes Universe construction.
type Option func(*universeConfig)

type universeConfig struct {
	strataCol string
}

// WithStrata requests stratification by the named categorical column.
// The column must exist on the Table and every category must hold at
// least two rows; violations surface as errors from New.
func WithStrata(column string) Option {
	return func(c *universeConfig) {
		c.strataCol = column
	}
}

// New builds a Universe from a Table, validating eagerly so that every
// strategy built on the result can trust the row identity unconditionally.
// Returns ErrNilTable, ErrNoRows, ErrStrataNotFound, or ErrStratumTooSmall.
func New(t Table, opts ...Option) (*Universe, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	n := t.NumRows()
	if n < 1 {
		return nil, ErrNoRows
	}

	var cfg universeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	u := &Universe{table: t, n: n}
	if cfg.strataCol == "" {
		return u, nil
	}

	col, ok := t.Column(cfg.strataCol)
	if !ok {
		return nil, fmt.Errorf("New: column %q: %w", cfg.strataCol, ErrStrataNotFound)
	}
	if len(col) != n {
		return nil, fmt.Errorf("New: column %q has %d values, want %d: %w", cfg.strataCol, len(col), n, ErrColumnLength)
	}

	// Group row indices by category; iteration over rows keeps each
	// group in ascending row order without an extra sort.
	strata := make(map[string][]int)
	for i, cat := range col {
		strata[cat] = append(strata[cat], i)
	}
	cats := make([]string, 0, len(strata))
	for cat, rows := range strata {
		if len(rows) < 2 {
			return nil, fmt.Errorf("New: category %q has %d row(s): %w", cat, len(rows), ErrStratumTooSmall)
		}
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	u.strataCol = cfg.strataCol
	u.strata = strata
	u.cats = cats

	return u, nil
}

// NumRows reports the total number of rows in the universe.
func (u *Universe) NumRows() int { return u.n }

// Table returns the underlying read-only handle.
func (u *Universe) Table() Table { return u.table }

// Stratified reports whether the universe carries strata.
func (u *Universe) Stratified() bool { return u.strata != nil }

// StrataColumn returns the stratification column name, or "" when
// the universe is unstratified.
func (u *Universe) StrataColumn() string { return u.strataCol }

// Categories returns the category names in sorted (canonical) order.
// Nil when the universe is unstratified.
func (u *Universe) Categories() []string {
	if u.cats == nil {
		return nil
	}

	return append([]string(nil), u.cats...)
}

// Stratum returns the ascending row indices of one category.
// Nil when the category is unknown or the universe is unstratified.
func (u *Universe) Stratum(category string) []int {
	rows, ok := u.strata[category]
	if !ok {
		return nil
	}

	return append([]int(nil), rows...)
}
