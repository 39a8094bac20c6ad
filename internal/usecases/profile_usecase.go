package usecases

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sparkier.backend/internal/domain/entities"
	domainerrors "sparkier.backend/internal/domain/errors"
	"sparkier.backend/internal/domain/repositories"
	"sparkier.backend/pkg/logger"
	"sparkier.backend/pkg/utils"
)

// ProfileUsecase handles consultant profile business logic
type ProfileUsecase struct {
	profileRepo       repositories.ProfileRepository
	reviewRepo        repositories.ReviewRepository
	missionRepo       repositories.MissionRepository
	sparkRepo         repositories.SparkRepository
	slugResolver      *SlugResolver
	reviewReconciler  *ReviewReconciler
	missionReconciler *MissionReconciler
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(
	profileRepo repositories.ProfileRepository,
	reviewRepo repositories.ReviewRepository,
	missionRepo repositories.MissionRepository,
	sparkRepo repositories.SparkRepository,
	slugResolver *SlugResolver,
	reviewReconciler *ReviewReconciler,
	missionReconciler *MissionReconciler,
) *ProfileUsecase {
	return &ProfileUsecase{
		profileRepo:       profileRepo,
		reviewRepo:        reviewRepo,
		missionRepo:       missionRepo,
		sparkRepo:         sparkRepo,
		slugResolver:      slugResolver,
		reviewReconciler:  reviewReconciler,
		missionReconciler: missionReconciler,
	}
}

// GetBySlug returns the public consultant page payload
func (u *ProfileUsecase) GetBySlug(ctx context.Context, slug string) (*entities.ProfileView, error) {
	profile, err := u.profileRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	reviews, err := u.reviewRepo.ListByConsultant(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	missions, err := u.missionRepo.ListByConsultant(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	sparks, err := u.sparkRepo.ListByConsultant(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	return &entities.ProfileView{
		Profile:  profile,
		Reviews:  reviews,
		Missions: missions,
		Sparks:   sparks,
	}, nil
}

// GetByUserID returns the profile owned by a user
func (u *ProfileUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	return u.profileRepo.GetByUserID(ctx, userID)
}

// ListConsultants lists the public consultant directory
func (u *ProfileUsecase) ListConsultants(ctx context.Context, search string, page, limit int) ([]*entities.Profile, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	profiles, total, err := u.profileRepo.ListByRole(ctx, entities.RoleConsultant, search, params.Limit, params.Offset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return profiles, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// UpdateProfile updates the profile owned by a user. A changed first or
// last name regenerates the slug; the profile's own slug is excluded
// from the uniqueness walk so an unchanged name keeps its slug.
func (u *ProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := u.applyAndStore(ctx, profile, input); err != nil {
		return nil, err
	}
	return profile, nil
}

// SaveProfile is the full consultant-edit save: the profile fields plus
// the complete desired review and mission sets. Both sub-entity lists
// are validated up front, before any write; the three branches then run
// concurrently against independent tables. There is no rollback across
// branches: a partial failure leaves the successful branches applied and
// surfaces every branch error to the caller.
func (u *ProfileUsecase) SaveProfile(ctx context.Context, userID uuid.UUID, input *entities.SaveProfileInput) (*entities.Profile, error) {
	// Validation happens strictly before the first store access: an
	// invalid submission must not reach the backend at all.
	reviews, err := u.reviewReconciler.Prepare(input.Reviews)
	if err != nil {
		return nil, err
	}
	missions, err := u.missionReconciler.Prepare(input.Missions)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		wg                                sync.WaitGroup
		profileErr, reviewErr, missionErr error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		profileErr = u.applyAndStore(ctx, profile, &input.Profile)
	}()
	go func() {
		defer wg.Done()
		reviewErr = u.reviewReconciler.Reconcile(ctx, profile.ID, reviews)
	}()
	go func() {
		defer wg.Done()
		missionErr = u.missionReconciler.Reconcile(ctx, profile.ID, missions)
	}()
	wg.Wait()

	if err := multierr.Combine(profileErr, reviewErr, missionErr); err != nil {
		logger.Error(ctx, "profile save partially failed",
			zap.String("consultant_id", profile.ID.String()),
			zap.Error(err))
		return nil, err
	}
	return profile, nil
}

// applyAndStore copies the input onto the profile, re-slugs on a name
// change and writes the row. A slug uniqueness collision at write time
// (the check-then-act race) is retried once with a fresh resolve.
func (u *ProfileUsecase) applyAndStore(ctx context.Context, profile *entities.Profile, input *entities.UpdateProfileInput) error {
	nameChanged := input.FirstName != profile.FirstName || input.LastName != profile.LastName
	currentSlug := profile.Slug

	profile.FirstName = input.FirstName
	profile.LastName = input.LastName
	profile.Title = input.Title
	profile.Bio = input.Bio
	profile.Company = input.Company
	profile.Competencies = input.Competencies
	profile.Languages = input.Languages
	profile.LinkedInURL = null.NewString(input.LinkedInURL, input.LinkedInURL != "")
	profile.BookingURL = null.NewString(input.BookingURL, input.BookingURL != "")
	profile.ProfileImageURL = null.NewString(input.ProfileImageURL, input.ProfileImageURL != "")

	if nameChanged {
		slug, err := u.slugResolver.Resolve(ctx, profile.FullName(), entities.SlugScopeProfile, currentSlug)
		if err != nil {
			return err
		}
		profile.Slug = slug
	}

	err := u.profileRepo.Update(ctx, profile)
	if errors.Is(err, domainerrors.ErrAlreadyExists) && nameChanged {
		// Lost the check-then-act race; resolve again and retry once.
		// The exclude stays the persisted slug, not the failed candidate.
		slug, rerr := u.slugResolver.Resolve(ctx, profile.FullName(), entities.SlugScopeProfile, currentSlug)
		if rerr != nil {
			return rerr
		}
		profile.Slug = slug
		err = u.profileRepo.Update(ctx, profile)
	}
	return err
}
