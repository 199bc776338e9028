package store

import (
	"context"

	"fireforce/pkg/types"

	sq "github.com/Masterminds/squirrel"
)

// CaseStore is the persisted case list. Both backends keep the display
// convention of the portal: newest report first.
type CaseStore interface {
	CreateCase(ctx context.Context, c *types.CaseReport) error
	Case(ctx context.Context, caseID string) (*types.CaseReport, error)
	Cases(ctx context.Context) ([]*types.CaseReport, error)
	CasesByReporter(ctx context.Context, reportedBy string) ([]*types.CaseReport, error)
	UpdateCase(ctx context.Context, caseID string, patch types.CasePatch) error
	DeleteCase(ctx context.Context, caseID string) error
}

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
