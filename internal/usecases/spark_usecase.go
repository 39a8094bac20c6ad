package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"sparkier.backend/internal/domain/entities"
	domainerrors "sparkier.backend/internal/domain/errors"
	"sparkier.backend/internal/domain/repositories"
	"sparkier.backend/pkg/logger"
	"sparkier.backend/pkg/utils"
)

// SparkUsecase handles spark catalog business logic
type SparkUsecase struct {
	sparkRepo    repositories.SparkRepository
	profileRepo  repositories.ProfileRepository
	slugResolver *SlugResolver
}

// NewSparkUsecase creates a new spark usecase
func NewSparkUsecase(
	sparkRepo repositories.SparkRepository,
	profileRepo repositories.ProfileRepository,
	slugResolver *SlugResolver,
) *SparkUsecase {
	return &SparkUsecase{
		sparkRepo:    sparkRepo,
		profileRepo:  profileRepo,
		slugResolver: slugResolver,
	}
}

// Create publishes a new spark for the consultant owning the user
// account. The URL slug derives from the title and is unique within the
// spark scope; a write-time collision is retried once.
func (u *SparkUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateSparkInput) (*entities.Spark, error) {
	profile, err := u.consultantProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	spark := &entities.Spark{
		ConsultantID: profile.ID,
		Title:        input.Title,
		Highlight:    null.NewString(input.Highlight, input.Highlight != ""),
		Description:  input.Description,
		Duration:     input.Duration,
		Price:        null.NewString(input.Price, input.Price != ""),
		Benefits:     input.Benefits,
	}

	url, err := u.slugResolver.Resolve(ctx, input.Title, entities.SlugScopeSpark, "")
	if err != nil {
		return nil, err
	}
	spark.URL = url

	err = u.sparkRepo.Create(ctx, spark)
	if errors.Is(err, domainerrors.ErrAlreadyExists) {
		url, rerr := u.slugResolver.Resolve(ctx, input.Title, entities.SlugScopeSpark, "")
		if rerr != nil {
			return nil, rerr
		}
		spark.URL = url
		err = u.sparkRepo.Create(ctx, spark)
	}
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "spark created",
		zap.String("spark_id", spark.ID.String()),
		zap.String("url", spark.URL))
	return spark, nil
}

// Update rewrites a spark owned by the user. A changed title regenerates
// the URL slug, excluding the spark's own URL from the uniqueness walk.
func (u *SparkUsecase) Update(ctx context.Context, userID, sparkID uuid.UUID, input *entities.UpdateSparkInput) (*entities.Spark, error) {
	profile, err := u.consultantProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	spark, err := u.sparkRepo.GetByID(ctx, sparkID)
	if err != nil {
		return nil, err
	}
	if spark.ConsultantID != profile.ID {
		return nil, domainerrors.ErrForbidden
	}

	titleChanged := input.Title != spark.Title
	currentURL := spark.URL

	spark.Title = input.Title
	spark.Highlight = null.NewString(input.Highlight, input.Highlight != "")
	spark.Description = input.Description
	spark.Duration = input.Duration
	spark.Price = null.NewString(input.Price, input.Price != "")
	spark.Benefits = input.Benefits

	if titleChanged {
		url, err := u.slugResolver.Resolve(ctx, input.Title, entities.SlugScopeSpark, currentURL)
		if err != nil {
			return nil, err
		}
		spark.URL = url
	}

	err = u.sparkRepo.Update(ctx, spark)
	if errors.Is(err, domainerrors.ErrAlreadyExists) && titleChanged {
		url, rerr := u.slugResolver.Resolve(ctx, input.Title, entities.SlugScopeSpark, currentURL)
		if rerr != nil {
			return nil, rerr
		}
		spark.URL = url
		err = u.sparkRepo.Update(ctx, spark)
	}
	if err != nil {
		return nil, err
	}
	return spark, nil
}

// GetByURL returns the public spark page payload
func (u *SparkUsecase) GetByURL(ctx context.Context, url string) (*entities.Spark, error) {
	return u.sparkRepo.GetByURL(ctx, url)
}

// ListByOwner lists the sparks of the consultant owning the user account
func (u *SparkUsecase) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entities.Spark, error) {
	profile, err := u.consultantProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.sparkRepo.ListByConsultant(ctx, profile.ID)
}

// List lists the public spark catalog
func (u *SparkUsecase) List(ctx context.Context, search string, page, limit int) ([]*entities.Spark, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	sparks, total, err := u.sparkRepo.List(ctx, search, params.Limit, params.Offset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return sparks, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// Delete soft deletes a spark owned by the user. The URL stays reserved.
func (u *SparkUsecase) Delete(ctx context.Context, userID, sparkID uuid.UUID) error {
	profile, err := u.consultantProfile(ctx, userID)
	if err != nil {
		return err
	}
	return u.sparkRepo.SoftDelete(ctx, sparkID, profile.ID)
}

func (u *SparkUsecase) consultantProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.HasRole(entities.RoleConsultant) {
		return nil, domainerrors.ErrForbidden
	}
	return profile, nil
}
