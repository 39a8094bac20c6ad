package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparkier.backend/internal/domain/entities"
	domainerrors "sparkier.backend/internal/domain/errors"
)

func TestMissionRepository_InsertAndList(t *testing.T) {
	db := newTestDB(t)
	createMissionTable(t, db)
	repo := NewMissionRepository(db)
	ctx := context.Background()

	consultantID := uuid.New()
	older := &entities.Mission{
		ConsultantID: consultantID,
		Title:        "Payment platform migration",
		Company:      "Acme",
		Description:  "Moved the payment stack to a new PSP.",
		Duration:     "6 months",
		Date:         "2023-01",
	}
	require.NoError(t, repo.Insert(ctx, older))
	assert.NotEqual(t, uuid.Nil, older.ID)

	newer := &entities.Mission{
		ConsultantID: consultantID,
		Title:        "Cloud cost audit",
		Company:      "Globex",
		Description:  "Cut the cloud bill by a third.",
		Duration:     "3 months",
		Date:         "2024-06",
	}
	require.NoError(t, repo.Insert(ctx, newer))

	require.NoError(t, repo.Insert(ctx, &entities.Mission{
		ConsultantID: uuid.New(),
		Title:        "Unrelated",
		Company:      "Elsewhere",
		Description:  "Not ours.",
		Duration:     "1 month",
	}))

	missions, err := repo.ListByConsultant(ctx, consultantID)
	require.NoError(t, err)
	require.Len(t, missions, 2)
	assert.Equal(t, "Cloud cost audit", missions[0].Title, "newest engagement first")
	assert.Equal(t, "Payment platform migration", missions[1].Title)
}

func TestMissionRepository_UpdateByTitle(t *testing.T) {
	db := newTestDB(t)
	createMissionTable(t, db)
	repo := NewMissionRepository(db)
	ctx := context.Background()

	mission := &entities.Mission{
		ConsultantID: uuid.New(),
		Title:        "Cloud cost audit",
		Company:      "Globex",
		Description:  "Initial write-up.",
		Duration:     "3 months",
		Date:         "2024-06",
	}
	require.NoError(t, repo.Insert(ctx, mission))

	updated := *mission
	updated.Company = "Globex Industries"
	updated.Description = "Cut the cloud bill by a third."
	require.NoError(t, repo.UpdateByTitle(ctx, &updated))

	got, err := repo.ListByConsultant(ctx, mission.ConsultantID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Globex Industries", got[0].Company)
	assert.Equal(t, "Cut the cloud bill by a third.", got[0].Description)
	assert.Equal(t, mission.ID, got[0].ID, "row identity survives the update")

	missing := *mission
	missing.Title = "No such mission"
	assert.ErrorIs(t, repo.UpdateByTitle(ctx, &missing), domainerrors.ErrNotFound)

	foreign := *mission
	foreign.ConsultantID = uuid.New()
	assert.ErrorIs(t, repo.UpdateByTitle(ctx, &foreign), domainerrors.ErrNotFound,
		"title match is scoped to the consultant")
}

func TestMissionRepository_DeleteByTitle(t *testing.T) {
	db := newTestDB(t)
	createMissionTable(t, db)
	repo := NewMissionRepository(db)
	ctx := context.Background()

	mission := &entities.Mission{
		ConsultantID: uuid.New(),
		Title:        "Cloud cost audit",
		Company:      "Globex",
		Description:  "d",
		Duration:     "3 months",
	}
	require.NoError(t, repo.Insert(ctx, mission))

	assert.ErrorIs(t, repo.DeleteByTitle(ctx, uuid.New(), mission.Title), domainerrors.ErrNotFound)

	require.NoError(t, repo.DeleteByTitle(ctx, mission.ConsultantID, mission.Title))
	got, err := repo.ListByConsultant(ctx, mission.ConsultantID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMissionRepository_DBError(t *testing.T) {
	db := newTestDB(t) // no table created
	repo := NewMissionRepository(db)

	_, err := repo.ListByConsultant(context.Background(), uuid.New())
	assert.Error(t, err)
}
