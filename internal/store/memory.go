package store

import (
	"context"
	"sync"
	"time"

	"fireforce/internal/utils"
	"fireforce/pkg/types"
)

// MemoryStore keeps the case list in process memory, newest first. It backs
// demo mode (no DATABASE_URL configured) and tests; nothing survives a
// restart.
type MemoryStore struct {
	mu    sync.Mutex
	cases []*types.CaseReport
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cases: make([]*types.CaseReport, 0)}
}

func (s *MemoryStore) CreateCase(_ context.Context, c *types.CaseReport) error {
	if c.ID == "" {
		c.ID = utils.NanoID()
	}
	// A preset ReportedAt survives so seeding can backdate cases.
	if c.ReportedAt.IsZero() {
		c.ReportedAt = time.Now()
	}
	c.UpdatedAt = c.ReportedAt

	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Prepend keeps the newest-first display order without sorting.
	stored := *c
	s.cases = append([]*types.CaseReport{&stored}, s.cases...)

	return nil
}

func (s *MemoryStore) Case(_ context.Context, caseID string) (*types.CaseReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.cases {
		if c.ID == caseID {
			out := *c
			return &out, nil
		}
	}

	return nil, types.ErrCaseNotFound
}

func (s *MemoryStore) Cases(_ context.Context) ([]*types.CaseReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*types.CaseReport, 0, len(s.cases))
	for _, c := range s.cases {
		copied := *c
		out = append(out, &copied)
	}

	return out, nil
}

func (s *MemoryStore) CasesByReporter(_ context.Context, reportedBy string) ([]*types.CaseReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*types.CaseReport, 0)
	for _, c := range s.cases {
		if c.ReportedBy == reportedBy {
			copied := *c
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (s *MemoryStore) UpdateCase(_ context.Context, caseID string, patch types.CasePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.cases {
		if c.ID == caseID {
			patch.Apply(c)
			c.UpdatedAt = time.Now()
			return nil
		}
	}

	return types.ErrCaseNotFound
}

func (s *MemoryStore) DeleteCase(_ context.Context, caseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.cases {
		if c.ID == caseID {
			s.cases = append(s.cases[:i], s.cases[i+1:]...)
			return nil
		}
	}

	return types.ErrCaseNotFound
}
