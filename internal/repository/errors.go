package repository

import (
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nikolayk812/partsdepot/internal/domain"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// mapError translates driver errors into domain sentinels, keeping the
// original in the chain.
func mapError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrNotFound, err))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == uniqueViolation || pgErr.Code == foreignKeyViolation) {
		return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrConflict, err))
	}

	return fmt.Errorf("%s: %w", op, err)
}

// pageBounds converts page and limit to LIMIT and OFFSET. An offset past
// math.MaxInt32 saturates, so pages far beyond the end stay empty.
func pageBounds(page, limit int) (int32, int32) {
	limit = min(max(limit, 1), math.MaxInt32)
	page = max(page, 1)

	offset := int64(math.MaxInt32)
	if int64(page-1) <= int64(math.MaxInt32)/int64(limit) {
		offset = min(int64(page-1)*int64(limit), math.MaxInt32)
	}

	return int32(limit), int32(offset)
}
