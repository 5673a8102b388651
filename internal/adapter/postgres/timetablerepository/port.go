package timetablerepository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/classhub-2025.net/internal/core/ports/primary"
	"gitlab.com/classhub-2025.net/internal/core/ports/secondary"
	"gitlab.com/classhub-2025.net/internal/domain"
	querybuilder "gitlab.com/classhub-2025.net/internal/utils"
)

var _ secondary.TimetablePort = &timetableRepo{}

type timetableRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) secondary.TimetablePort {
	return &timetableRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

type cellRow struct {
	Day     int        `db:"day"`
	Period  int        `db:"period"`
	ClassID *uuid.UUID `db:"class_id"`
}

// GetGrid loads the persisted cells for a user. Cells with no row are
// empty; the returned grid always has all 30 cells.
func (t timetableRepo) GetGrid(ctx context.Context, userID uuid.UUID) (domain.Grid, error) {
	tbl := domain.GetTimetableTable()
	query, args := querybuilder.NewQueryBuilder(t.schema).
		Select(tbl.Day, tbl.Period, tbl.ClassID).
		From(tbl.GetTableName()).
		Where(fmt.Sprintf("%s = ?", tbl.UserID), userID).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var rows []cellRow
	if err := t.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return domain.Grid{}, fmt.Errorf("failed to load timetable: %w", err)
	}

	var grid domain.Grid
	for _, row := range rows {
		if row.Day < 0 || row.Day >= domain.NumDays || row.Period < 1 || row.Period > domain.NumPeriods {
			t.logger.Warn("Skipping out-of-range timetable row", "userId", userID, "day", row.Day, "period", row.Period)
			continue
		}
		grid.Set(domain.Day(row.Day), domain.Period(row.Period), row.ClassID)
	}

	return grid, nil
}

// SetCell upserts exactly one (day, period) row. The conflict target is
// the per-cell primary key, so the write never touches other cells and
// repeating it with the same value is a no-op overwrite.
func (t timetableRepo) SetCell(ctx context.Context, userID uuid.UUID, day domain.Day, period domain.Period, classID *uuid.UUID) error {
	tbl := domain.GetTimetableTable()
	query, args := querybuilder.NewQueryBuilder(t.schema).
		Insert(tbl.UserID, tbl.Day, tbl.Period, tbl.ClassID).
		Into(tbl.GetTableName()).
		Values(userID, int(day), int(period), classID).
		OnConflict(tbl.UserID, tbl.Day, tbl.Period).
		SetExclude(tbl.ClassID).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := t.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set timetable cell: %w", err)
	}

	return nil
}
