package itinerary

import (
	"context"
	"encoding/json"
	"errors"
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
	Save(ctx context.Context, itinerary *models.SavedItinerary) error
	Get(ctx context.Context, id uuid.UUID) (*models.SavedItinerary, error)
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

// Save inserts one generated plan. Content is persisted as JSONB.
func (r *RepositoryImpl) Save(ctx context.Context, itinerary *models.SavedItinerary) error {
	content, err := json.Marshal(itinerary.Content)
	if err != nil {
		return fmt.Errorf("encoding itinerary content: %w", err)
	}

	query, args, err := r.sb.Insert("itineraries").
		Columns("id", "title", "content", "experience_type", "duration", "budget", "destinations", "created_at").
		Values(itinerary.ID, itinerary.Title, content, itinerary.ExperienceType,
			itinerary.Duration, itinerary.Budget, itinerary.Destinations, itinerary.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("building itinerary insert: %w", err)
	}

	start := time.Now()
	_, err = r.pgpool.Exec(ctx, query, args...)
	metrics.RecordDBQuery(ctx, "itineraries_insert", time.Since(start), err)
	if err != nil {
		r.logger.Error("Failed to save itinerary", zap.Error(err))
		return fmt.Errorf("failed to save itinerary: %w", err)
	}
	return nil
}

// Get returns one saved plan by id.
func (r *RepositoryImpl) Get(ctx context.Context, id uuid.UUID) (*models.SavedItinerary, error) {
	query, args, err := r.sb.Select("id", "title", "content", "experience_type", "duration", "budget", "destinations", "created_at").
		From("itineraries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building itinerary select: %w", err)
	}

	var (
		saved   models.SavedItinerary
		content []byte
	)
	start := time.Now()
	err = r.pgpool.QueryRow(ctx, query, args...).Scan(
		&saved.ID, &saved.Title, &content, &saved.ExperienceType,
		&saved.Duration, &saved.Budget, &saved.Destinations, &saved.CreatedAt,
	)
	metrics.RecordDBQuery(ctx, "itineraries_get", time.Since(start), err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Failed to get itinerary", zap.Error(err))
		return nil, fmt.Errorf("failed to get itinerary: %w", err)
	}

	if err := json.Unmarshal(content, &saved.Content); err != nil {
		return nil, fmt.Errorf("decoding itinerary content: %w", err)
	}
	return &saved, nil
}
