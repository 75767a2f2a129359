package user

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/studypath/reminder-service/internal/domain"
)

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		username string
		wantErr  error
	}{
		{
			name:     "missing email",
			email:    "  ",
			username: "learner",
			wantErr:  ErrEmailRequired,
		},
		{
			name:     "missing username",
			email:    "learner@example.com",
			username: "",
			wantErr:  ErrUsernameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(nil)
			_, err := svc.Register(context.Background(), tt.email, tt.username)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRegisterTrimsAndCreates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockUserRepository(ctrl)
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) error {
			if user.Email != "learner@example.com" {
				t.Errorf("email: got %q, want trimmed value", user.Email)
			}
			if user.Username != "learner" {
				t.Errorf("username: got %q, want trimmed value", user.Username)
			}
			user.ID = "user-1"
			return nil
		})

	svc := NewService(mockRepo)
	user, err := svc.Register(context.Background(), " learner@example.com ", " learner ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "user-1" {
		t.Errorf("expected repository-assigned ID, got %q", user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockUserRepository(ctrl)
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(domain.ErrEmailTaken)

	svc := NewService(mockRepo)
	_, err := svc.Register(context.Background(), "taken@example.com", "learner")
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginRequiresBothFieldsToMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockUserRepository(ctrl)
	mockRepo.EXPECT().
		FindByEmailAndUsername(gomock.Any(), "learner@example.com", "wrong-name").
		Return(nil, domain.ErrUserNotFound)

	svc := NewService(mockRepo)
	_, err := svc.Login(context.Background(), "learner@example.com", "wrong-name")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
