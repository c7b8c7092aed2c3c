package repository

import (
	"context"
	"fmt"

	"manochitram/internal/data/entity"
	"manochitram/pkg/database"

	"go.uber.org/zap"
)

const recommendationTable = "recommendations"

var schemaByDialect = map[database.Dialect]string{
	database.DialectSQLite: `
		CREATE TABLE IF NOT EXISTS recommendations (
			id INTEGER PRIMARY KEY,
			sentiment TEXT NOT NULL,
			movie_title TEXT NOT NULL,
			overview TEXT NOT NULL,
			release_date TEXT,
			rating REAL,
			user_name TEXT,
			user_age INTEGER,
			user_gender TEXT
		)
	`,
	database.DialectPostgres: `
		CREATE TABLE IF NOT EXISTS recommendations (
			id BIGSERIAL PRIMARY KEY,
			sentiment TEXT NOT NULL,
			movie_title TEXT NOT NULL,
			overview TEXT NOT NULL,
			release_date TEXT,
			rating DOUBLE PRECISION,
			user_name TEXT,
			user_age INTEGER,
			user_gender TEXT
		)
	`,
}

// RecommendationRepository is insert-only. There is no update or delete path.
type RecommendationRepository interface {
	EnsureSchema(ctx context.Context) error
	CreateBatch(ctx context.Context, recs []*entity.Recommendation) error
	Count(ctx context.Context) (int64, error)
}

type recommendationRepository struct {
	db  database.SQLIface
	log *zap.Logger
}

func NewRecommendationRepository(db database.SQLIface, log *zap.Logger) RecommendationRepository {
	return &recommendationRepository{
		db:  db,
		log: log.With(zap.String("repository", "recommendation")),
	}
}

func (r *recommendationRepository) EnsureSchema(ctx context.Context) error {
	ddl, ok := schemaByDialect[r.db.Dialect()]
	if !ok {
		return fmt.Errorf("no schema for dialect %s", r.db.Dialect())
	}

	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		r.log.Error("Failed to ensure recommendations table", zap.Error(err))
		return fmt.Errorf("ensure recommendations table: %w", err)
	}

	return nil
}

// CreateBatch appends all records in one statement, so a submit's rows land together.
func (r *recommendationRepository) CreateBatch(ctx context.Context, recs []*entity.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}

	insert := r.db.Builder().
		Insert(recommendationTable).
		Columns("sentiment", "movie_title", "overview", "release_date", "rating", "user_name", "user_age", "user_gender")

	for _, rec := range recs {
		insert = insert.Values(
			rec.Sentiment,
			rec.MovieTitle,
			rec.Overview,
			rec.ReleaseDate,
			rec.Rating,
			rec.UserName,
			rec.UserAge,
			rec.UserGender,
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build recommendations insert: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create recommendations",
			zap.Error(err),
			zap.Int("count", len(recs)),
		)
		return fmt.Errorf("create %d recommendations: %w", len(recs), err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected != int64(len(recs)) {
		return fmt.Errorf("create recommendations: expected %d rows, wrote %d", len(recs), affected)
	}

	return nil
}

func (r *recommendationRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := r.db.Builder().Select("COUNT(*)").From(recommendationTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count recommendations", zap.Error(err))
		return 0, fmt.Errorf("count recommendations: %w", err)
	}

	return count, nil
}
