package usecases

import (
	"context"
	"fmt"

	"sparkier.backend/internal/domain/entities"
	domainerrors "sparkier.backend/internal/domain/errors"
	"sparkier.backend/internal/domain/repositories"
	"sparkier.backend/pkg/utils"
)

// SlugResolver turns display names into URL slugs that are unique within
// one scope. Profile slugs and spark URLs live in separate namespaces,
// so the same slug may exist in both.
type SlugResolver struct {
	profileRepo repositories.ProfileRepository
	sparkRepo   repositories.SparkRepository
}

// NewSlugResolver creates a new slug resolver
func NewSlugResolver(profileRepo repositories.ProfileRepository, sparkRepo repositories.SparkRepository) *SlugResolver {
	return &SlugResolver{profileRepo: profileRepo, sparkRepo: sparkRepo}
}

// Resolve slugifies the name and suffixes a counter until the slug is
// free within the scope. excludeSlug names the caller's current slug so
// an entity keeping its name keeps its slug; pass "" on creation.
//
// The walk is check-then-act: two concurrent signups for the same name
// can both see the same free slug. The unique index catches the loser
// at write time and the caller retries once with a fresh resolve.
func (r *SlugResolver) Resolve(ctx context.Context, name string, scope entities.SlugScope, excludeSlug string) (string, error) {
	base := utils.GenerateSlug(name)
	if base == "" {
		return "", domainerrors.ErrEmptySlug
	}

	candidate := base
	for counter := 2; ; counter++ {
		taken, err := r.taken(ctx, scope, candidate, excludeSlug)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

func (r *SlugResolver) taken(ctx context.Context, scope entities.SlugScope, slug, excludeSlug string) (bool, error) {
	switch scope {
	case entities.SlugScopeSpark:
		return r.sparkRepo.URLTaken(ctx, slug, excludeSlug)
	default:
		return r.profileRepo.SlugTaken(ctx, slug, excludeSlug)
	}
}
