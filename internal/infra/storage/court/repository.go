// Package court репозиторий чтения каталога кортов
// Каталог управляется дашбордом площадок — здесь только чтение
package court

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CourtEase-BookingService/internal/domain"
	"github.com/m04kA/CourtEase-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CourtEase-BookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов (см. pkg/dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий кортов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает активный корт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"c.id",
		"v.name AS venue_name",
		"c.name",
		"c.sport",
		"c.price_per_hour",
		"c.is_active",
		"c.created_at",
		"c.updated_at",
	).
		From("courts c").
		Join("venues v ON v.id = c.venue_id").
		Where(squirrel.Eq{"c.id": id, "c.is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var court domain.Court
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&court.ID,
		&court.VenueName,
		&court.Name,
		&court.Sport,
		&court.PricePerHour,
		&court.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan court: %v", ErrScanRow, err)
	}

	court.CreatedAt = createdAt.Time
	court.UpdatedAt = updatedAt.Time

	return &court, nil
}
