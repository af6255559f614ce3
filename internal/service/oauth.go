package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dharma-pro/temple-booking/internal/domain"
	"github.com/dharma-pro/temple-booking/internal/repository"
)

var (
	ErrOAuthEmailMissing = errors.New("oauth2 profile has no email")
)

// OAuthProfile holds the attributes read from the provider's userinfo endpoint.
type OAuthProfile struct {
	Email   string
	Name    string
	Picture string
}

type OAuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type OAuthService struct {
	repo OAuthUserRepository
}

func NewOAuthService(repo OAuthUserRepository) *OAuthService {
	return &OAuthService{
		repo: repo,
	}
}

// UpsertUser refreshes the name and photo of a known email, or registers a new
// password-less account whose user name is the email.
func (s *OAuthService) UpsertUser(ctx context.Context, profile OAuthProfile) (domain.User, error) {
	if profile.Email == "" {
		return domain.User{}, ErrOAuthEmailMissing
	}

	user, err := s.repo.FindByEmail(ctx, profile.Email)
	switch {
	case err == nil:
		applyProfile(&user, profile)

		updated, err := s.repo.Update(ctx, user)
		if err != nil {
			return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
		}

		return updated, nil
	case errors.Is(err, repository.ErrUserNotFound):
		user = domain.User{
			Email:    profile.Email,
			UserName: profile.Email,
		}
		applyProfile(&user, profile)

		created, err := s.repo.Create(ctx, user)
		if err != nil {
			return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
		}

		return created, nil
	default:
		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}
}

func applyProfile(user *domain.User, profile OAuthProfile) {
	user.ProfilePhoto = profile.Picture
	if profile.Name == "" {
		return
	}

	first, last, _ := strings.Cut(profile.Name, " ")
	user.FirstName = first
	user.LastName = last
}
