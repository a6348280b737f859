// SPDX-License-Identifier: MIT
// Package harness: cases and case storage.

package harness

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// Case is one system A·x = F with an optional reference answer.
type Case struct {
	Name   string        `json:"name"`
	A      *matrix.Dense `json:"a"`
	F      *matrix.Dense `json:"f"`
	Answer *matrix.Dense `json:"answer,omitempty"` // nil: no reference
}

// HasAnswer reports whether c carries a reference answer.
func (c Case) HasAnswer() bool { return c.Answer != nil && c.Answer.Rows() > 0 }

// Validate checks that A and F are present and have the same row count.
func (c Case) Validate() error {
	if c.A == nil || c.F == nil {
		return fmt.Errorf("case %q: %w", c.Name, ErrInvalidCase)
	}
	if err := matrix.ValidateSameRows(c.A, c.F); err != nil {
		return fmt.Errorf("case %q: %w: %w", c.Name, ErrInvalidCase, err)
	}

	return nil
}

// CaseStore persists an ordered case catalogue.
type CaseStore interface {
	// SaveCases replaces the stored catalogue with cases.
	SaveCases(ctx context.Context, cases []Case) error
	// LoadCases returns the stored catalogue in its saved order.
	LoadCases(ctx context.Context) ([]Case, error)
}

// MemoryStore is an in-process CaseStore. The zero value is ready to use.
type MemoryStore struct {
	mu    sync.RWMutex
	cases []Case
}

var _ CaseStore = (*MemoryStore)(nil)

// NewMemoryStore returns a store seeded with cases.
func NewMemoryStore(cases ...Case) *MemoryStore {
	return &MemoryStore{cases: cloneCases(cases)}
}

// SaveCases implements CaseStore.
func (s *MemoryStore) SaveCases(ctx context.Context, cases []Case) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, c := range cases {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cases = cloneCases(cases)

	return nil
}

// LoadCases implements CaseStore. The returned cases are deep copies.
func (s *MemoryStore) LoadCases(ctx context.Context) ([]Case, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneCases(s.cases), nil
}

func cloneCases(in []Case) []Case {
	out := make([]Case, len(in))
	for i, c := range in {
		out[i] = Case{Name: c.Name, A: cloneOrNil(c.A), F: cloneOrNil(c.F), Answer: cloneOrNil(c.Answer)}
	}

	return out
}

func cloneOrNil(m *matrix.Dense) *matrix.Dense {
	if m == nil {
		return nil
	}

	return m.Clone()
}
