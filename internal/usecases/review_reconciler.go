package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"sparkier.backend/internal/domain/entities"
	domainerrors "sparkier.backend/internal/domain/errors"
	"sparkier.backend/internal/domain/repositories"
	"sparkier.backend/pkg/logger"
)

// ReviewReconciler replaces a consultant's persisted review set with the
// submitted one. The edit form always sends the complete desired set, so
// reconciliation is a diff: submitted rows with a "temp-" id are inserts,
// rows with a persisted id are updates, and persisted rows missing from
// the submission are deletes.
type ReviewReconciler struct {
	reviewRepo repositories.ReviewRepository
}

// NewReviewReconciler creates a new review reconciler
func NewReviewReconciler(reviewRepo repositories.ReviewRepository) *ReviewReconciler {
	return &ReviewReconciler{reviewRepo: reviewRepo}
}

// Prepare drops fully-blank rows and validates the rest. Validation is
// all-or-nothing: the first missing field rejects the whole submission
// before any write happens.
func (r *ReviewReconciler) Prepare(submissions []entities.ReviewSubmission) ([]entities.ReviewSubmission, error) {
	kept := make([]entities.ReviewSubmission, 0, len(submissions))
	for i, s := range submissions {
		if s.IsBlank() {
			continue
		}
		if strings.TrimSpace(s.ClientName) == "" {
			return nil, domainerrors.NewValidationError("review", i, "client name")
		}
		if strings.TrimSpace(s.ClientRole) == "" {
			return nil, domainerrors.NewValidationError("review", i, "client role")
		}
		if strings.TrimSpace(s.ClientCompany) == "" {
			return nil, domainerrors.NewValidationError("review", i, "client company")
		}
		if strings.TrimSpace(s.ReviewText) == "" {
			return nil, domainerrors.NewValidationError("review", i, "review text")
		}
		kept = append(kept, s)
	}
	return kept, nil
}

// Reconcile applies the submitted set against the persisted one, in
// delete, update, insert order, each write scoped by the consultant id.
// Writes are per-row and not transactional: the first failure aborts the
// pass and already-applied rows stay applied.
func (r *ReviewReconciler) Reconcile(ctx context.Context, consultantID uuid.UUID, submissions []entities.ReviewSubmission) error {
	persisted, err := r.reviewRepo.ListByConsultant(ctx, consultantID)
	if err != nil {
		return err
	}

	var inserts, updates []entities.ReviewSubmission
	submittedIDs := make(map[uuid.UUID]bool)
	for _, s := range submissions {
		if s.IsNew() {
			inserts = append(inserts, s)
			continue
		}
		id, err := uuid.Parse(s.ID)
		if err != nil {
			return domainerrors.BadRequest("invalid review id: " + s.ID)
		}
		submittedIDs[id] = true
		updates = append(updates, s)
	}

	for _, p := range persisted {
		if submittedIDs[p.ID] {
			continue
		}
		if err := r.reviewRepo.Delete(ctx, p.ID, consultantID); err != nil {
			return err
		}
		logger.Debug(ctx, "review deleted",
			zap.String("consultant_id", consultantID.String()),
			zap.String("review_id", p.ID.String()))
	}

	for _, s := range updates {
		review, err := r.toEntity(consultantID, s)
		if err != nil {
			return err
		}
		if err := r.reviewRepo.Update(ctx, review); err != nil {
			return err
		}
	}

	for _, s := range inserts {
		review, err := r.toEntity(consultantID, s)
		if err != nil {
			return err
		}
		review.ID = uuid.Nil // let the store assign a real id
		if err := r.reviewRepo.Insert(ctx, review); err != nil {
			return err
		}
	}

	return nil
}

func (r *ReviewReconciler) toEntity(consultantID uuid.UUID, s entities.ReviewSubmission) (*entities.Review, error) {
	review := &entities.Review{
		ConsultantID:   consultantID,
		ClientName:     s.ClientName,
		ClientRole:     s.ClientRole,
		ClientCompany:  s.ClientCompany,
		ReviewText:     s.ReviewText,
		Rating:         s.Rating,
		ClientImageURL: null.NewString(s.ClientImageURL, s.ClientImageURL != ""),
	}
	if s.CreatedAt != nil {
		review.CreatedAt = *s.CreatedAt
	}
	if !s.IsNew() {
		id, err := uuid.Parse(s.ID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid review id: " + s.ID)
		}
		review.ID = id
	}
	return review, nil
}
