package userrepository

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

var _ secondary.UserPort = &userRepo{}

type userRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) secondary.UserPort {
	return &userRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func (u userRepo) Create(ctx context.Context, user *domain.Users) error {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).
		Insert(
			userTbl.ID, userTbl.Name, userTbl.GoogleID,
			userTbl.Picture, userTbl.TokenDigest,
		).
		Into(userTbl.GetTableName()).
		Values(
			user.ID, user.Name, user.GoogleID,
			user.Picture, user.TokenDigest,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	_, err := u.db.ExecContext(ctx, query, args...)

	return err
}

func (u userRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	return u.getByColumn(ctx, userTbl.ID, id)
}

func (u userRepo) GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	return u.getByColumn(ctx, userTbl.GoogleID, googleID)
}

// GetByTokenDigest resolves the unique user whose current token digest
// equals the given value. Exact equality on the full digest only.
func (u userRepo) GetByTokenDigest(ctx context.Context, digest string) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	return u.getByColumn(ctx, userTbl.TokenDigest, digest)
}

// UpdateTokenDigest overwrites the user's current token digest. This is
// the revoke-all-others write: any previously issued token stops matching.
func (u userRepo) UpdateTokenDigest(ctx context.Context, id uuid.UUID, digest string) error {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).
		Update(userTbl.GetTableName(), querybuilder.UpdateData{
			userTbl.TokenDigest: digest,
		}).
		Where(fmt.Sprintf("%s = ?", userTbl.ID), id).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	res, err := u.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update token digest: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (u userRepo) getByColumn(ctx context.Context, column string, value interface{}) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).
		Select(
			userTbl.ID, userTbl.Name, userTbl.GoogleID,
			userTbl.Picture, userTbl.TokenDigest,
		).
		From(userTbl.GetTableName()).
		Where(fmt.Sprintf("%s = ?", column), value).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var user domain.Users
	err := u.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
