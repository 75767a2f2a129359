// Package user implements account registration and login. There is no
// password or session layer; identity is the email/username pair, matching
// what the upstream clients send.
package user

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/studypath/reminder-service/internal/domain"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrUsernameRequired = errors.New("username is required")
)

type Service struct {
	userRepo domain.UserRepository
}

func NewService(userRepo domain.UserRepository) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

func (s *Service) Register(ctx context.Context, email, username string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)

	if email == "" {
		return nil, ErrEmailRequired
	}
	if username == "" {
		return nil, ErrUsernameRequired
	}

	user := &domain.User{
		Email:    email,
		Username: username,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			slog.InfoContext(ctx, "registration rejected, email already taken",
				slog.String("email", email),
			)
		}
		return nil, err
	}

	slog.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID),
		slog.String("email", email),
	)

	return user, nil
}

func (s *Service) Login(ctx context.Context, email, username string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)

	if email == "" {
		return nil, ErrEmailRequired
	}
	if username == "" {
		return nil, ErrUsernameRequired
	}

	return s.userRepo.FindByEmailAndUsername(ctx, email, username)
}
