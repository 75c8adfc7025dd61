// Package subscription stores newsletter signups.
package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/descubrechiapas/chiapas-guide/internal/app/models"
	"github.com/descubrechiapas/chiapas-guide/internal/observability/metrics"
)

var _ Repository = (*RepositoryImpl)(nil)

type Repository interface {
	Upsert(ctx context.Context, email string) (*models.Subscription, error)
}

// Querier is the pool surface the repository needs; *pgxpool.Pool satisfies
// it, as does a pgxmock pool in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type RepositoryImpl struct {
	logger *zap.Logger
	pgpool Querier
	sb     squirrel.StatementBuilderType
}

func NewRepository(pgpool Querier, logger *zap.Logger) *RepositoryImpl {
	return &RepositoryImpl{
		logger: logger,
		pgpool: pgpool,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert stores the email once; signing up again reactivates the existing
// row instead of failing on the unique constraint.
func (r *RepositoryImpl) Upsert(ctx context.Context, email string) (*models.Subscription, error) {
	query, args, err := r.sb.Insert("subscriptions").
		Columns("id", "email", "created_at", "active").
		Values(uuid.New(), email, time.Now(), true).
		Suffix("ON CONFLICT (email) DO UPDATE SET active = TRUE").
		Suffix("RETURNING id, email, created_at, active").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building subscription upsert: %w", err)
	}

	var sub models.Subscription
	start := time.Now()
	err = r.pgpool.QueryRow(ctx, query, args...).Scan(&sub.ID, &sub.Email, &sub.CreatedAt, &sub.Active)
	metrics.RecordDBQuery(ctx, "subscriptions_upsert", time.Since(start), err)
	if err != nil {
		r.logger.Error("Failed to upsert subscription", zap.Error(err))
		return nil, fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return &sub, nil
}
