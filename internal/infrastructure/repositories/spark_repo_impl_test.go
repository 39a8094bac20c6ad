package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"sparkier.backend/internal/domain/entities"
	domainerrors "sparkier.backend/internal/domain/errors"
)

func seedSpark(t *testing.T, repo *SparkRepository, consultantID uuid.UUID, url string) *entities.Spark {
	t.Helper()
	spark := &entities.Spark{
		ConsultantID: consultantID,
		Title:        "Architecture review",
		URL:          url,
		Description:  "A one-week deep dive into your stack.",
		Duration:     "1 week",
		Price:        null.StringFrom("4500 EUR"),
		Benefits:     []string{"written report", "roadmap session"},
	}
	require.NoError(t, repo.Create(context.Background(), spark))
	return spark
}

func TestSparkRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createSparkTable(t, db)
	repo := NewSparkRepository(db)
	ctx := context.Background()

	spark := seedSpark(t, repo, uuid.New(), "architecture-review")

	byID, err := repo.GetByID(ctx, spark.ID)
	require.NoError(t, err)
	assert.Equal(t, "architecture-review", byID.URL)
	assert.Equal(t, []string{"written report", "roadmap session"}, byID.Benefits)

	byURL, err := repo.GetByURL(ctx, "architecture-review")
	require.NoError(t, err)
	assert.Equal(t, spark.ID, byURL.ID)

	_, err = repo.GetByURL(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSparkRepository_CreateDuplicateURL(t *testing.T) {
	db := newTestDB(t)
	createSparkTable(t, db)
	repo := NewSparkRepository(db)

	seedSpark(t, repo, uuid.New(), "architecture-review")
	err := repo.Create(context.Background(), &entities.Spark{
		ConsultantID: uuid.New(),
		Title:        "Architecture review",
		URL:          "architecture-review",
		Description:  "d",
		Duration:     "1 week",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestSparkRepository_Update(t *testing.T) {
	db := newTestDB(t)
	createSparkTable(t, db)
	repo := NewSparkRepository(db)
	ctx := context.Background()

	spark := seedSpark(t, repo, uuid.New(), "architecture-review")

	spark.Title = "Architecture deep dive"
	spark.URL = "architecture-deep-dive"
	spark.Benefits = []string{"written report"}
	require.NoError(t, repo.Update(ctx, spark))

	got, err := repo.GetByID(ctx, spark.ID)
	require.NoError(t, err)
	assert.Equal(t, "Architecture deep dive", got.Title)
	assert.Equal(t, "architecture-deep-dive", got.URL)
	assert.Equal(t, []string{"written report"}, got.Benefits)

	foreign := *spark
	foreign.ConsultantID = uuid.New()
	assert.ErrorIs(t, repo.Update(ctx, &foreign), domainerrors.ErrNotFound,
		"updates are scoped to the owner")
}

func TestSparkRepository_URLTaken(t *testing.T) {
	db := newTestDB(t)
	createSparkTable(t, db)
	repo := NewSparkRepository(db)
	ctx := context.Background()

	spark := seedSpark(t, repo, uuid.New(), "architecture-review")

	taken, err := repo.URLTaken(ctx, "architecture-review", "")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.URLTaken(ctx, "architecture-review-2", "")
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.URLTaken(ctx, "architecture-review", "architecture-review")
	require.NoError(t, err)
	assert.False(t, taken, "a spark may keep its own url")

	// URLs of soft-deleted sparks stay reserved.
	require.NoError(t, repo.SoftDelete(ctx, spark.ID, spark.ConsultantID))
	taken, err = repo.URLTaken(ctx, "architecture-review", "")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestSparkRepository_Lists(t *testing.T) {
	db := newTestDB(t)
	createSparkTable(t, db)
	repo := NewSparkRepository(db)
	ctx := context.Background()

	consultantID := uuid.New()
	seedSpark(t, repo, consultantID, "architecture-review")
	second := seedSpark(t, repo, consultantID, "cloud-audit")
	second.Title = "Cloud audit"
	require.NoError(t, repo.Update(ctx, second))
	seedSpark(t, repo, uuid.New(), "other-offer")

	mine, err := repo.ListByConsultant(ctx, consultantID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, total, err := repo.List(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)

	found, total, err := repo.List(ctx, "CLOUD", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "title search is case-insensitive")
	require.Len(t, found, 1)
	assert.Equal(t, "cloud-audit", found[0].URL)
}

func TestSparkRepository_SoftDelete(t *testing.T) {
	db := newTestDB(t)
	createSparkTable(t, db)
	repo := NewSparkRepository(db)
	ctx := context.Background()

	spark := seedSpark(t, repo, uuid.New(), "architecture-review")

	assert.ErrorIs(t, repo.SoftDelete(ctx, spark.ID, uuid.New()), domainerrors.ErrNotFound,
		"delete is scoped to the owner")

	require.NoError(t, repo.SoftDelete(ctx, spark.ID, spark.ConsultantID))
	_, err := repo.GetByID(ctx, spark.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	var count int64
	require.NoError(t, db.Table("sparks").Count(&count).Error)
	assert.Equal(t, int64(1), count, "soft delete keeps the row")
}

func TestSparkRepository_DBError(t *testing.T) {
	db := newTestDB(t) // no table created
	repo := NewSparkRepository(db)

	_, err := repo.GetByURL(context.Background(), "architecture-review")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrNotFound)
}
