package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
)

// User service errors.
var (
	ErrAccountLocked    = errors.New("account is locked")
	ErrAccountInactive  = errors.New("account is disabled")
	ErrAdminUndeletable = errors.New("admin users cannot be deleted")
)

// UserService handles account business logic: authentication with lockout,
// registration, and admin-side account management.
type UserService struct {
	userRepo    *repository.UserRepository
	authService *AuthService
	maxAttempts int
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository, authService *AuthService, maxAttempts int) *UserService {
	return &UserService{
		userRepo:    userRepo,
		authService: authService,
		maxAttempts: maxAttempts,
	}
}

// Authenticate verifies email + password and maintains the failed-attempt
// counter. Non-admin accounts lock after maxAttempts consecutive failures;
// a successful login resets the counter and stamps last_login.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	// Admin accounts never lock; everyone else is rejected while locked.
	if !user.IsAdmin && user.IsLocked {
		return nil, ErrAccountLocked
	}

	if err := s.authService.CheckPassword(user.PasswordHash, password); err != nil {
		if !user.IsAdmin {
			attempts, incErr := s.userRepo.IncrementFailedAttempts(ctx, user.ID)
			if incErr == nil && attempts >= s.maxAttempts {
				// SetLocked resets the counter, so the next unlock starts clean.
				if lockErr := s.userRepo.SetLocked(ctx, user.ID, true); lockErr == nil {
					return nil, ErrAccountLocked
				}
			}
		}
		return nil, ErrInvalidCredentials
	}

	if err := s.userRepo.RecordLogin(ctx, user.ID); err != nil {
		return nil, err
	}
	user.FailedLoginAttempts = 0

	return user, nil
}

// Logout stamps last_logout and clears the Redis session.
func (s *UserService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.RecordLogout(ctx, userID); err != nil {
		return err
	}
	return s.authService.ClearSession(ctx, userID)
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// List retrieves all users.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// Create inserts a new account with a hashed password. The caller is
// responsible for running the password policy first.
func (s *UserService) Create(ctx context.Context, user *model.User, password string) error {
	hashed, err := s.authService.HashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hashed
	user.IsActive = true
	return s.userRepo.Create(ctx, user)
}

// Update modifies a user's profile fields and, when newPassword is set,
// replaces the password. The current password is verified before anything
// is written, so a failed check leaves the account untouched.
func (s *UserService) Update(ctx context.Context, user *model.User, currentPassword, newPassword string) error {
	var hashed string
	if newPassword != "" {
		existing, err := s.userRepo.GetByID(ctx, user.ID)
		if err != nil {
			return err
		}
		if err := s.authService.CheckPassword(existing.PasswordHash, currentPassword); err != nil {
			return ErrInvalidCredentials
		}
		hashed, err = s.authService.HashPassword(newPassword)
		if err != nil {
			return err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if hashed != "" {
		return s.userRepo.UpdatePassword(ctx, user.ID, hashed)
	}
	return nil
}

// ToggleLock locks or unlocks an account and resets its failure counter.
func (s *UserService) ToggleLock(ctx context.Context, id uuid.UUID, locked bool) error {
	return s.userRepo.SetLocked(ctx, id, locked)
}

// Delete removes an account. Admin accounts are refused.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.IsAdmin {
		return ErrAdminUndeletable
	}
	return s.userRepo.Delete(ctx, id)
}
