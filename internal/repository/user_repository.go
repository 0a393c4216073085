package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/partsdepot/internal/db"
	"github.com/nikolayk812/partsdepot/internal/domain"
	"github.com/nikolayk812/partsdepot/internal/port"
)

type userRepository struct {
	q *db.Queries
}

func NewUser(pool *pgxpool.Pool) port.UserRepository {
	return &userRepository{
		q: db.New(pool),
	}
}

func (r *userRepository) ListUsers(ctx context.Context, role string, page, limit int) (domain.UserPage, error) {
	if role != "" {
		if _, err := domain.ParseRole(role); err != nil {
			return domain.UserPage{}, domain.NewValidationError("role", err.Error())
		}
	}

	rowLimit, rowOffset := pageBounds(page, limit)

	total, err := r.q.CountUsers(ctx, role)
	if err != nil {
		return domain.UserPage{}, fmt.Errorf("q.CountUsers: %w", err)
	}

	rows, err := r.q.ListUsers(ctx, db.ListUsersParams{
		Role:      role,
		RowLimit:  rowLimit,
		RowOffset: rowOffset,
	})
	if err != nil {
		return domain.UserPage{}, fmt.Errorf("q.ListUsers: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserToDomain(row))
	}

	return domain.UserPage{Users: users, Total: int(total)}, nil
}

func (r *userRepository) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if id == uuid.Nil {
		return domain.User{}, fmt.Errorf("id is empty")
	}

	row, err := r.q.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, mapError("q.GetUser", err)
	}

	return mapUserToDomain(row), nil
}

// UpdateUser changes only the fields set in update.
func (r *userRepository) UpdateUser(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (domain.User, error) {
	if id == uuid.Nil {
		return domain.User{}, fmt.Errorf("id is empty")
	}

	params := db.UpdateUserParams{ID: id}
	if update.Role != nil {
		if _, err := domain.ParseRole(string(*update.Role)); err != nil {
			return domain.User{}, domain.NewValidationError("role", err.Error())
		}
		params.Role = pgtype.Text{String: string(*update.Role), Valid: true}
	}
	if update.Active != nil {
		params.Active = pgtype.Bool{Bool: *update.Active, Valid: true}
	}

	row, err := r.q.UpdateUser(ctx, params)
	if err != nil {
		return domain.User{}, mapError("q.UpdateUser", err)
	}

	return mapUserToDomain(row), nil
}

func mapUserToDomain(row db.User) domain.User {
	return domain.User{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Role:      domain.Role(row.Role),
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
