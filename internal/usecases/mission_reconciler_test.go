package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sparkier.backend/internal/domain/entities"
	domainerrors "sparkier.backend/internal/domain/errors"
	"sparkier.backend/internal/usecases"
)

func submittedMission(title string) entities.MissionSubmission {
	return entities.MissionSubmission{
		Title:       title,
		Company:     "Acme",
		Description: "Did the thing.",
		Duration:    "3 months",
		Date:        "2024-06",
	}
}

func TestMissionReconciler_Prepare_DropsBlankRows(t *testing.T) {
	r := usecases.NewMissionReconciler(new(MockMissionRepository))

	kept, err := r.Prepare([]entities.MissionSubmission{
		submittedMission("Replatforming"),
		{},                     // the untouched placeholder row
		{Date: "2024-01"},      // date alone does not count as content
		{Title: " ", Date: ""}, // whitespace only
	})
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "Replatforming", kept[0].Title)
}

func TestMissionReconciler_Prepare_RejectsPartialRow(t *testing.T) {
	r := usecases.NewMissionReconciler(new(MockMissionRepository))

	partial := submittedMission("Replatforming")
	partial.Duration = "  "

	_, err := r.Prepare([]entities.MissionSubmission{partial})
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "mission", verr.Entity)
	assert.Equal(t, 0, verr.Index)
	assert.Equal(t, "duration", verr.Field)
}

func TestMissionReconciler_Prepare_RejectsDuplicateTitles(t *testing.T) {
	r := usecases.NewMissionReconciler(new(MockMissionRepository))

	// Titles are the identity key; two rows sharing one would collapse
	// into a single mission, last write winning.
	_, err := r.Prepare([]entities.MissionSubmission{
		submittedMission("Replatforming"),
		submittedMission("Replatforming"),
	})
	require.Error(t, err)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "mission", verr.Entity)
	assert.Equal(t, 1, verr.Index)
	assert.Equal(t, "unique title", verr.Field)
}

func TestMissionReconciler_Reconcile_Diff(t *testing.T) {
	repo := new(MockMissionRepository)
	r := usecases.NewMissionReconciler(repo)
	ctx := context.Background()

	consultantID := uuid.New()
	repo.On("ListByConsultant", ctx, consultantID).Return([]*entities.Mission{
		{ID: uuid.New(), ConsultantID: consultantID, Title: "Kept engagement", Company: "Old Co"},
		{ID: uuid.New(), ConsultantID: consultantID, Title: "Removed engagement"},
	}, nil)

	repo.On("DeleteByTitle", ctx, consultantID, "Removed engagement").Return(nil)

	// Matching title is updated in place; the title itself is the key.
	repo.On("UpdateByTitle", ctx, mock.MatchedBy(func(mn *entities.Mission) bool {
		return mn.ConsultantID == consultantID && mn.Title == "Kept engagement" && mn.Company == "Acme"
	})).Return(nil)

	repo.On("Insert", ctx, mock.MatchedBy(func(mn *entities.Mission) bool {
		return mn.ConsultantID == consultantID && mn.Title == "New engagement"
	})).Return(nil)

	err := r.Reconcile(ctx, consultantID, []entities.MissionSubmission{
		submittedMission("Kept engagement"),
		submittedMission("New engagement"),
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestMissionReconciler_Reconcile_RenameIsDeletePlusInsert(t *testing.T) {
	repo := new(MockMissionRepository)
	r := usecases.NewMissionReconciler(repo)
	ctx := context.Background()

	consultantID := uuid.New()
	repo.On("ListByConsultant", ctx, consultantID).Return([]*entities.Mission{
		{ID: uuid.New(), ConsultantID: consultantID, Title: "Old title"},
	}, nil)

	// A renamed mission is indistinguishable from delete+insert.
	repo.On("DeleteByTitle", ctx, consultantID, "Old title").Return(nil)
	repo.On("Insert", ctx, mock.MatchedBy(func(mn *entities.Mission) bool {
		return mn.Title == "New title"
	})).Return(nil)

	err := r.Reconcile(ctx, consultantID, []entities.MissionSubmission{
		submittedMission("New title"),
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "UpdateByTitle", mock.Anything, mock.Anything)
}

func TestMissionReconciler_Reconcile_WriteFailureAborts(t *testing.T) {
	repo := new(MockMissionRepository)
	r := usecases.NewMissionReconciler(repo)
	ctx := context.Background()

	consultantID := uuid.New()
	repo.On("ListByConsultant", ctx, consultantID).Return([]*entities.Mission{
		{ID: uuid.New(), ConsultantID: consultantID, Title: "Kept engagement"},
	}, nil)

	dbErr := errors.New("disk full")
	repo.On("UpdateByTitle", ctx, mock.Anything).Return(dbErr)

	err := r.Reconcile(ctx, consultantID, []entities.MissionSubmission{
		submittedMission("Kept engagement"),
		submittedMission("Never inserted"),
	})
	assert.ErrorIs(t, err, dbErr)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
