package catalogrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/classhub-2025.net/internal/core/ports/primary"
	"gitlab.com/classhub-2025.net/internal/core/ports/secondary"
	"gitlab.com/classhub-2025.net/internal/domain"
	querybuilder "gitlab.com/classhub-2025.net/internal/utils"
)

var _ secondary.CatalogPort = &catalogRepo{}

// catalogRepo serves the immutable rooms/classes reference data.
type catalogRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) secondary.CatalogPort {
	return &catalogRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func (c catalogRepo) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	roomTbl := domain.GetRoomTable()
	query, args := querybuilder.NewQueryBuilder(c.schema).
		Select(roomTbl.ID, roomTbl.Name).
		From(roomTbl.GetTableName()).
		OrderBy(roomTbl.Name, true).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var rooms []*domain.Room
	if err := c.db.SelectContext(ctx, &rooms, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return rooms, nil
}

func (c catalogRepo) ListClasses(ctx context.Context) ([]*domain.ClassWithRoom, error) {
	classTbl := domain.GetClassTable()
	roomTbl := domain.GetRoomTable()
	query, args := querybuilder.NewQueryBuilder(c.schema).
		Select(
			"c.id", "c.name", "c.teacher", "c.room_id", "c.day", "c.period",
			"r.name AS room_name",
		).
		From(classTbl.GetTableName()+" c").
		Join(querybuilder.JoinTypeInner, c.schema+"."+roomTbl.GetTableName(), "r", "r.id = c.room_id").
		OrderBy("c.day", true).
		OrderBy("c.period", true).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var classes []*domain.ClassWithRoom
	if err := c.db.SelectContext(ctx, &classes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}

	return classes, nil
}

func (c catalogRepo) GetClass(ctx context.Context, id uuid.UUID) (*domain.Class, error) {
	classTbl := domain.GetClassTable()
	query, args := querybuilder.NewQueryBuilder(c.schema).
		Select(
			classTbl.ID, classTbl.Name, classTbl.Teacher,
			classTbl.RoomID, classTbl.Day, classTbl.Period,
		).
		From(classTbl.GetTableName()).
		Where(fmt.Sprintf("%s = ?", classTbl.ID), id).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var class domain.Class
	err := c.db.GetContext(ctx, &class, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &class, nil
}

// Seed inserts the static reference data with ON CONFLICT DO NOTHING, so
// restarting the service never duplicates or mutates existing rows.
func (c catalogRepo) Seed(ctx context.Context, rooms []domain.Room, classes []domain.Class) error {
	roomTbl := domain.GetRoomTable()
	for _, room := range rooms {
		query, args := querybuilder.NewQueryBuilder(c.schema).
			Insert(roomTbl.ID, roomTbl.Name).
			Into(roomTbl.GetTableName()).
			Values(room.ID, room.Name).
			OnConflict(roomTbl.ID).
			DoNothing().
			Build()

		query = sqlx.Rebind(sqlx.DOLLAR, query)
		if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to seed room %s: %w", room.Name, err)
		}
	}

	classTbl := domain.GetClassTable()
	for _, class := range classes {
		query, args := querybuilder.NewQueryBuilder(c.schema).
			Insert(
				classTbl.ID, classTbl.Name, classTbl.Teacher,
				classTbl.RoomID, classTbl.Day, classTbl.Period,
			).
			Into(classTbl.GetTableName()).
			Values(
				class.ID, class.Name, class.Teacher,
				class.RoomID, int(class.Day), int(class.Period),
			).
			OnConflict(classTbl.ID).
			DoNothing().
			Build()

		query = sqlx.Rebind(sqlx.DOLLAR, query)
		if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to seed class %s: %w", class.Name, err)
		}
	}

	c.logger.Info("Seeded catalog reference data", "rooms", len(rooms), "classes", len(classes))
	return nil
}
