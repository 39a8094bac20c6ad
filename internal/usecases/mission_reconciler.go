package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sparkier.backend/internal/domain/entities"
	domainerrors "sparkier.backend/internal/domain/errors"
	"sparkier.backend/internal/domain/repositories"
	"sparkier.backend/pkg/logger"
)

// MissionReconciler replaces a consultant's persisted mission set with
// the submitted one. Missions carry no client-visible id, so the title
// is the identity key: a submitted title matching a persisted one is an
// in-place update, an unmatched submitted title is an insert, and a
// persisted title missing from the submission is a delete. Renaming a
// mission therefore lands as delete+insert, which resets its row
// identity and timestamps.
type MissionReconciler struct {
	missionRepo repositories.MissionRepository
}

// NewMissionReconciler creates a new mission reconciler
func NewMissionReconciler(missionRepo repositories.MissionRepository) *MissionReconciler {
	return &MissionReconciler{missionRepo: missionRepo}
}

// Prepare drops fully-blank rows and validates the rest. Validation is
// all-or-nothing: the first missing field rejects the whole submission
// before any write happens. Because the title is the identity key, two
// kept rows sharing a title would silently collapse into one during
// reconciliation, so duplicates are rejected here too.
func (r *MissionReconciler) Prepare(submissions []entities.MissionSubmission) ([]entities.MissionSubmission, error) {
	kept := make([]entities.MissionSubmission, 0, len(submissions))
	seenTitles := make(map[string]bool, len(submissions))
	for i, s := range submissions {
		if s.IsBlank() {
			continue
		}
		if strings.TrimSpace(s.Title) == "" {
			return nil, domainerrors.NewValidationError("mission", i, "title")
		}
		if strings.TrimSpace(s.Company) == "" {
			return nil, domainerrors.NewValidationError("mission", i, "company")
		}
		if strings.TrimSpace(s.Duration) == "" {
			return nil, domainerrors.NewValidationError("mission", i, "duration")
		}
		if strings.TrimSpace(s.Description) == "" {
			return nil, domainerrors.NewValidationError("mission", i, "description")
		}
		if seenTitles[s.Title] {
			return nil, domainerrors.NewValidationError("mission", i, "unique title")
		}
		seenTitles[s.Title] = true
		kept = append(kept, s)
	}
	return kept, nil
}

// Reconcile applies the submitted set against the persisted one, in
// delete, update, insert order, each write scoped by the consultant id.
// Writes are per-row and not transactional: the first failure aborts the
// pass and already-applied rows stay applied.
func (r *MissionReconciler) Reconcile(ctx context.Context, consultantID uuid.UUID, submissions []entities.MissionSubmission) error {
	persisted, err := r.missionRepo.ListByConsultant(ctx, consultantID)
	if err != nil {
		return err
	}

	persistedTitles := make(map[string]bool, len(persisted))
	for _, p := range persisted {
		persistedTitles[p.Title] = true
	}

	var inserts, updates []entities.MissionSubmission
	submittedTitles := make(map[string]bool, len(submissions))
	for _, s := range submissions {
		submittedTitles[s.Title] = true
		if persistedTitles[s.Title] {
			updates = append(updates, s)
		} else {
			inserts = append(inserts, s)
		}
	}

	for _, p := range persisted {
		if submittedTitles[p.Title] {
			continue
		}
		if err := r.missionRepo.DeleteByTitle(ctx, consultantID, p.Title); err != nil {
			return err
		}
		logger.Debug(ctx, "mission deleted",
			zap.String("consultant_id", consultantID.String()),
			zap.String("title", p.Title))
	}

	for _, s := range updates {
		if err := r.missionRepo.UpdateByTitle(ctx, r.toEntity(consultantID, s)); err != nil {
			return err
		}
	}

	for _, s := range inserts {
		if err := r.missionRepo.Insert(ctx, r.toEntity(consultantID, s)); err != nil {
			return err
		}
	}

	return nil
}

func (r *MissionReconciler) toEntity(consultantID uuid.UUID, s entities.MissionSubmission) *entities.Mission {
	return &entities.Mission{
		ConsultantID: consultantID,
		Title:        s.Title,
		Company:      s.Company,
		Description:  s.Description,
		Duration:     s.Duration,
		Date:         s.Date,
	}
}
