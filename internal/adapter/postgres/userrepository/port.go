package userrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	querybuilder "gitlab.com/codearena.net/internal/utils"
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
			userTbl.Name, userTbl.Email, userTbl.PasswordHash,
			userTbl.Role, userTbl.AuthProvider, userTbl.GoogleID,
		).
		Into(userTbl.GetTableName()).
		Values(
			user.Name, user.Email, user.PasswordHash,
			user.Role, user.AuthProvider, user.GoogleID,
		).
		Returning(userTbl.ID, userTbl.CreatedAt).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	err := u.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		u.logger.Error("Failed to create user", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (u userRepo) GetByID(ctx context.Context, id string) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	return u.getOne(ctx, fmt.Sprintf("%s = ?", userTbl.ID), id)
}

func (u userRepo) GetByEmail(ctx context.Context, email string) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	return u.getOne(ctx, fmt.Sprintf("%s = ?", userTbl.Email), email)
}

func (u userRepo) GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	return u.getOne(ctx, fmt.Sprintf("%s = ?", userTbl.GoogleID), googleID)
}

// getOne resolves a single user by an equality clause. Returns (nil, nil)
// when no row matches.
func (u userRepo) getOne(ctx context.Context, clause string, arg interface{}) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).
		Select(
			userTbl.ID, userTbl.Name, userTbl.Email, userTbl.PasswordHash,
			userTbl.Role, userTbl.AuthProvider, userTbl.GoogleID, userTbl.CreatedAt,
		).
		From(userTbl.GetTableName()).
		Where(clause, arg).
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
