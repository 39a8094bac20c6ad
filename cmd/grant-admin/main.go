package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sparkier.backend/internal/config"
	"sparkier.backend/internal/domain/entities"
	domainrepo "sparkier.backend/internal/domain/repositories"
	"sparkier.backend/internal/infrastructure/repositories"
)

var openGrantAdminDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

var openGrantAdminSQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

type grantAdminRuntime interface {
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	UpdateRoles(ctx context.Context, profileID uuid.UUID, roles []string) error
}

type grantAdminDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (grantAdminRuntime, io.Closer, error)
	out     io.Writer
}

type grantAdminRuntimeImpl struct {
	userRepo    domainrepo.UserRepository
	profileRepo domainrepo.ProfileRepository
}

func (r grantAdminRuntimeImpl) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.userRepo.GetByEmail(ctx, email)
}

func (r grantAdminRuntimeImpl) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	return r.profileRepo.GetByUserID(ctx, userID)
}

func (r grantAdminRuntimeImpl) UpdateRoles(ctx context.Context, profileID uuid.UUID, roles []string) error {
	return r.profileRepo.UpdateRoles(ctx, profileID, roles)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultGrantAdminDeps() grantAdminDeps {
	return grantAdminDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (grantAdminRuntime, io.Closer, error) {
			dsn := cfg.Database.URL()
			db, err := openGrantAdminDB(dsn)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}

			sqlDB, err := openGrantAdminSQLDB(db)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}

			return grantAdminRuntimeImpl{
				userRepo:    repositories.NewUserRepository(db),
				profileRepo: repositories.NewProfileRepository(db),
			}, sqlDB, nil
		},
		out: os.Stdout,
	}
}

func parseEmail(email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return "", fmt.Errorf("--email is required")
	}
	if !strings.Contains(email, "@") {
		return "", fmt.Errorf("invalid email: %s", email)
	}
	return email, nil
}

func runGrantAdmin(args []string, deps grantAdminDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.prepare == nil {
		def := defaultGrantAdminDeps()
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("grant-admin", flag.ContinueOnError)
	emailFlag := fs.String("email", "", "account email (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	email, err := parseEmail(*emailFlag)
	if err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx := context.Background()
	user, err := runtime.GetUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to load user %s: %w", email, err)
	}

	profile, err := runtime.GetProfileByUserID(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("failed to load profile for %s: %w", email, err)
	}

	if profile.HasRole(entities.RoleAdmin) {
		_, _ = fmt.Fprintf(deps.out, "%s already has the admin role\n", email)
		return nil
	}

	roles := append(append([]string{}, profile.Roles...), entities.RoleAdmin)
	if err := runtime.UpdateRoles(ctx, profile.ID, roles); err != nil {
		return fmt.Errorf("failed granting admin role: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "Granted admin role")
	_, _ = fmt.Fprintf(deps.out, "user_id=%s\n", user.ID.String())
	_, _ = fmt.Fprintf(deps.out, "profile_id=%s\n", profile.ID.String())
	_, _ = fmt.Fprintf(deps.out, "roles=%s\n", strings.Join(roles, ","))
	return nil
}

func main() {
	if err := runGrantAdmin(os.Args[1:], defaultGrantAdminDeps()); err != nil {
		log.Fatal(err)
	}
}
