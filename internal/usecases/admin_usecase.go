package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sparkier.backend/internal/domain/entities"
	domainerrors "sparkier.backend/internal/domain/errors"
	"sparkier.backend/internal/domain/repositories"
	"sparkier.backend/pkg/logger"
	"sparkier.backend/pkg/utils"
)

var validRoles = map[string]bool{
	entities.RoleConsultant: true,
	entities.RoleClient:     true,
	entities.RoleAdmin:      true,
}

// AdminUsecase handles back-office operations
type AdminUsecase struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	clientRepo  repositories.ClientRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	clientRepo repositories.ClientRepository,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		clientRepo:  clientRepo,
	}
}

// ListUsers lists accounts with an optional email search
func (u *AdminUsecase) ListUsers(ctx context.Context, search string, page, limit int) ([]*entities.User, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	users, total, err := u.userRepo.List(ctx, search, params.Limit, params.Offset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return users, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// ListProfilesByRole lists profiles carrying a role
func (u *AdminUsecase) ListProfilesByRole(ctx context.Context, role, search string, page, limit int) ([]*entities.Profile, utils.PaginationMeta, error) {
	if role != "" && !validRoles[role] {
		return nil, utils.PaginationMeta{}, domainerrors.BadRequest("unknown role: " + role)
	}
	params := utils.GetPaginationParams(page, limit)
	profiles, total, err := u.profileRepo.ListByRole(ctx, role, search, params.Limit, params.Offset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return profiles, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// ListClients lists client companies
func (u *AdminUsecase) ListClients(ctx context.Context, search string, page, limit int) ([]*entities.Client, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	clients, total, err := u.clientRepo.List(ctx, search, params.Limit, params.Offset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return clients, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// UpdateRoles replaces the role set of a profile
func (u *AdminUsecase) UpdateRoles(ctx context.Context, profileID uuid.UUID, input *entities.UpdateRolesInput) error {
	for _, role := range input.Roles {
		if !validRoles[role] {
			return domainerrors.BadRequest("unknown role: " + role)
		}
	}
	if err := u.profileRepo.UpdateRoles(ctx, profileID, input.Roles); err != nil {
		return err
	}
	logger.Info(ctx, "roles updated",
		zap.String("profile_id", profileID.String()),
		zap.Strings("roles", input.Roles))
	return nil
}

// DeleteUser soft deletes an account and its profile. An account created
// before profile provisioning finished may have no profile row; that is
// not an error.
func (u *AdminUsecase) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := u.userRepo.SoftDelete(ctx, userID); err != nil {
		return err
	}
	if err := u.profileRepo.SoftDeleteByUserID(ctx, userID); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}
	logger.Info(ctx, "user deleted", zap.String("user_id", userID.String()))
	return nil
}
