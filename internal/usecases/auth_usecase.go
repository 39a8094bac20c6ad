package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"sparkier.backend/internal/domain/entities"
	domainerrors "sparkier.backend/internal/domain/errors"
	"sparkier.backend/internal/domain/repositories"
	"sparkier.backend/pkg/crypto"
	"sparkier.backend/pkg/jwt"
	"sparkier.backend/pkg/logger"
	"sparkier.backend/pkg/redis"
)

// SessionStore abstracts the encrypted Redis session persistence so the
// usecase can be tested without a live Redis.
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo       repositories.UserRepository
	profileRepo    repositories.ProfileRepository
	clientRepo     repositories.ClientRepository
	slugResolver   *SlugResolver
	jwtService     *jwt.JWTService
	sessionStore   SessionStore
	sessionTTL     time.Duration
	signupDeadline time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	clientRepo repositories.ClientRepository,
	slugResolver *SlugResolver,
	jwtService *jwt.JWTService,
	sessionStore SessionStore,
	sessionTTL time.Duration,
	signupDeadline time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		clientRepo:     clientRepo,
		slugResolver:   slugResolver,
		jwtService:     jwtService,
		sessionStore:   sessionStore,
		sessionTTL:     sessionTTL,
		signupDeadline: signupDeadline,
	}
}

// Register signs up a new account: user, profile with a unique slug, and
// for client accounts the company record. The whole signup runs under a
// deadline so a pathological slug walk cannot hang the request.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.signupDeadline)
	defer cancel()

	resp, err := u.register(ctx, input)
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, domainerrors.ErrTimeout
	}
	return resp, err
}

func (u *AuthUsecase) register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	if input.AccountType == entities.RoleClient && strings.TrimSpace(input.CompanyName) == "" {
		return nil, domainerrors.BadRequest("company name is required for client accounts")
	}

	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		PasswordHash: passwordHash,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	profile, err := u.createProfile(ctx, user.ID, input)
	if err != nil {
		return nil, err
	}

	if input.AccountType == entities.RoleClient {
		client := &entities.Client{
			UserID:      user.ID,
			CompanyName: input.CompanyName,
			Industry:    null.String{},
		}
		if err := u.clientRepo.Create(ctx, client); err != nil {
			return nil, err
		}
	}

	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, profile.Roles)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "account registered",
		zap.String("user_id", user.ID.String()),
		zap.String("slug", profile.Slug),
		zap.String("account_type", input.AccountType))

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
		Profile:      profile,
	}, nil
}

// createProfile resolves a unique slug and inserts the profile. A unique
// violation at insert time means another signup won the race for the
// same slug between check and write; resolve again and retry once.
func (u *AuthUsecase) createProfile(ctx context.Context, userID uuid.UUID, input *entities.RegisterInput) (*entities.Profile, error) {
	profile := &entities.Profile{
		UserID:    userID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Company:   input.CompanyName,
		Roles:     []string{input.AccountType},
	}

	slug, err := u.slugResolver.Resolve(ctx, profile.FullName(), entities.SlugScopeProfile, "")
	if err != nil {
		return nil, err
	}
	profile.Slug = slug

	err = u.profileRepo.Create(ctx, profile)
	if errors.Is(err, domainerrors.ErrAlreadyExists) {
		slug, rerr := u.slugResolver.Resolve(ctx, profile.FullName(), entities.SlugScopeProfile, "")
		if rerr != nil {
			return nil, rerr
		}
		profile.Slug = slug
		err = u.profileRepo.Create(ctx, profile)
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Login authenticates a user and either returns a token pair or, when
// the client asks for a session, stores the tokens server-side and
// returns an opaque session id.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	profile, err := u.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	var roles []string
	if profile != nil {
		roles = profile.Roles
	}
	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, roles)
	if err != nil {
		return nil, err
	}

	resp := &entities.AuthResponse{
		User:    user,
		Profile: profile,
	}

	if input.UseSession {
		sessionID := uuid.NewString()
		data := &redis.SessionData{
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
		}
		if err := u.sessionStore.CreateSession(ctx, sessionID, data, u.sessionTTL); err != nil {
			return nil, err
		}
		resp.SessionID = sessionID
		return resp, nil
	}

	resp.AccessToken = tokens.AccessToken
	resp.RefreshToken = tokens.RefreshToken
	return resp, nil
}

// Logout drops a server-side session. Token-pair logins have nothing to
// drop and are a client-side concern.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return u.sessionStore.DeleteSession(ctx, sessionID)
}

// Refresh exchanges a valid refresh token for a fresh pair
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, domainerrors.ErrUnauthorized
	}

	// Re-read the roles so a role change since issuance takes effect.
	profile, err := u.profileRepo.GetByUserID(ctx, claims.UserID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	var roles []string
	if profile != nil {
		roles = profile.Roles
	}

	return u.jwtService.GenerateTokenPair(claims.UserID, claims.Email, roles)
}

// GetMe returns the authenticated user with their profile
func (u *AuthUsecase) GetMe(ctx context.Context, userID uuid.UUID) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	return &entities.AuthResponse{User: user, Profile: profile}, nil
}

// ChangePassword verifies the current password before storing the new hash
func (u *AuthUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !crypto.CheckPassword(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, userID, hash)
}
