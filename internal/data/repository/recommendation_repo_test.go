package repository

import (
	"context"
	"testing"

	"manochitram/internal/data/entity"
	"manochitram/pkg/database"
	"manochitram/pkg/utils"

	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) (RecommendationRepository, database.SQLIface) {
	t.Helper()

	db, err := database.InitDB(utils.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := NewRecommendationRepository(db, zap.NewNop())
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return repo, db
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepo(t)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("second EnsureSchema returned error: %v", err)
	}
}

func TestCreateBatchAppendsRows(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, db := newTestRepo(t)

	recs := []*entity.Recommendation{
		{Sentiment: "positive", MovieTitle: "Up", Overview: "Balloons", ReleaseDate: "2009-05-28", Rating: 7.9, UserName: "Ann", UserAge: 8, UserGender: "Female"},
		{Sentiment: "positive", MovieTitle: "Up", Overview: "Balloons", ReleaseDate: "Unknown", Rating: 0, UserName: "Ann", UserAge: 8, UserGender: "Female"},
	}

	if err := repo.CreateBatch(ctx, recs); err != nil {
		t.Fatalf("CreateBatch returned error: %v", err)
	}
	if err := repo.CreateBatch(ctx, recs[:1]); err != nil {
		t.Fatalf("second CreateBatch returned error: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 rows including duplicates, got %d", count)
	}

	var (
		title, date, name, gender string
		rating                    float64
		age                       int
	)
	row := db.QueryRowContext(ctx, `SELECT movie_title, release_date, rating, user_name, user_age, user_gender FROM recommendations WHERE id = 2`)
	if err := row.Scan(&title, &date, &rating, &name, &age, &gender); err != nil {
		t.Fatalf("scan row: %v", err)
	}
	if title != "Up" || date != "Unknown" || rating != 0 || name != "Ann" || age != 8 || gender != "Female" {
		t.Fatalf("unexpected row: %s %s %v %s %d %s", title, date, rating, name, age, gender)
	}
}

func TestCreateBatchEmptyIsNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, _ := newTestRepo(t)

	if err := repo.CreateBatch(ctx, nil); err != nil {
		t.Fatalf("CreateBatch(nil) returned error: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty table, got %d", count)
	}
}

func TestCreateBatchFailsWithoutTable(t *testing.T) {
	t.Parallel()

	db, err := database.InitDB(utils.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	defer db.Close()

	repo := NewRecommendationRepository(db, zap.NewNop())
	err = repo.CreateBatch(context.Background(), []*entity.Recommendation{{Sentiment: "neutral", MovieTitle: "X", Overview: "Y"}})
	if err == nil {
		t.Fatal("expected error when table is missing")
	}
}
