package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fireforce/internal/utils"
	"fireforce/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const caseTableName = "fireforce.cases"

var caseColumns = []string{
	"id", "type", "title", "description", "location",
	"priority", "status", "reported_by", "assigned_to",
	"reported_at", "updated_at", "data",
}

// caseRow is the flat scan target; the jsonb payload is decoded into the
// variant selected by the type column after scanning.
type caseRow struct {
	ID          string    `db:"id"`
	Type        string    `db:"type"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Location    string    `db:"location"`
	Priority    string    `db:"priority"`
	Status      string    `db:"status"`
	ReportedBy  string    `db:"reported_by"`
	AssignedTo  *string   `db:"assigned_to"`
	ReportedAt  time.Time `db:"reported_at"`
	UpdatedAt   time.Time `db:"updated_at"`
	Data        []byte    `db:"data"`
}

func (r *caseRow) toReport() (*types.CaseReport, error) {
	caseType := types.CaseType(r.Type)

	data, err := types.DecodeIncidentData(caseType, r.Data)
	if err != nil {
		return nil, fmt.Errorf("case %s: %w", r.ID, err)
	}

	return &types.CaseReport{
		ID:          r.ID,
		Type:        caseType,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Priority:    types.CasePriority(r.Priority),
		Status:      types.CaseStatus(r.Status),
		ReportedBy:  r.ReportedBy,
		AssignedTo:  r.AssignedTo,
		ReportedAt:  r.ReportedAt,
		UpdatedAt:   r.UpdatedAt,
		Data:        data,
	}, nil
}

// CaseRepository stores cases as individual rows, so concurrent writers
// never clobber each other's records the way a full-document store would.
type CaseRepository struct {
	pool *pgxpool.Pool
}

func NewCaseRepository(pool *pgxpool.Pool) *CaseRepository {
	return &CaseRepository{pool: pool}
}

func (r *CaseRepository) CreateCase(ctx context.Context, c *types.CaseReport) error {
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

	payload, err := json.Marshal(c.Data)
	if err != nil {
		return fmt.Errorf("encode incident data: %w", err)
	}

	query, args, err := psql().Insert(caseTableName).
		Columns(caseColumns...).
		Values(
			c.ID, string(c.Type), c.Title, c.Description, c.Location,
			string(c.Priority), string(c.Status), c.ReportedBy, c.AssignedTo,
			c.ReportedAt, c.UpdatedAt, payload,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build case insert: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create case")
}

func (r *CaseRepository) Case(ctx context.Context, caseID string) (*types.CaseReport, error) {
	query, args, err := psql().Select(caseColumns...).From(caseTableName).
		Where(sq.Eq{"id": caseID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build case query: %w", err)
	}

	var row caseRow
	err = pgxscan.Get(ctx, r.pool, &row, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrCaseNotFound
		}
		return nil, err
	}

	return row.toReport()
}

func (r *CaseRepository) Cases(ctx context.Context) ([]*types.CaseReport, error) {
	return r.selectCases(ctx, nil)
}

func (r *CaseRepository) CasesByReporter(ctx context.Context, reportedBy string) ([]*types.CaseReport, error) {
	return r.selectCases(ctx, sq.Eq{"reported_by": reportedBy})
}

func (r *CaseRepository) selectCases(ctx context.Context, where any) ([]*types.CaseReport, error) {
	builder := psql().Select(caseColumns...).From(caseTableName).
		OrderBy("reported_at desc")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cases query: %w", err)
	}

	rows := make([]*caseRow, 0)
	if err := pgxscan.Select(ctx, r.pool, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select cases: %w", err)
	}

	cases := make([]*types.CaseReport, 0, len(rows))
	for _, row := range rows {
		c, err := row.toReport()
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}

	return cases, nil
}

func (r *CaseRepository) UpdateCase(ctx context.Context, caseID string, patch types.CasePatch) error {
	setMap := map[string]any{
		"updated_at": time.Now(),
	}
	if patch.Title != nil {
		setMap["title"] = *patch.Title
	}
	if patch.Description != nil {
		setMap["description"] = *patch.Description
	}
	if patch.Location != nil {
		setMap["location"] = *patch.Location
	}
	if patch.Priority != nil {
		setMap["priority"] = string(*patch.Priority)
	}
	if patch.Status != nil {
		setMap["status"] = string(*patch.Status)
	}
	if patch.AssignedTo != nil {
		setMap["assigned_to"] = nullable(*patch.AssignedTo)
	}

	query, args, err := psql().Update(caseTableName).SetMap(setMap).
		Where(sq.Eq{"id": caseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build case update for case %s: %w", caseID, err)
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update case: %w", err)
	}

	if result.RowsAffected() == 0 {
		return types.ErrCaseNotFound
	}

	return nil
}

func (r *CaseRepository) DeleteCase(ctx context.Context, caseID string) error {
	query, args, err := psql().Delete(caseTableName).
		Where(sq.Eq{"id": caseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build case delete for case %s: %w", caseID, err)
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete case: %w", err)
	}

	if result.RowsAffected() == 0 {
		return types.ErrCaseNotFound
	}

	return nil
}

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
