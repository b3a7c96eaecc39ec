package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "ledger/internal/errors"
	"ledger/internal/models"
	"ledger/internal/uuid"
)

// maxPasswordBytes is bcrypt's input limit.
const maxPasswordBytes = 72

// userService handles user-related business logic.
type userService struct {
	db      *gorm.DB
	cost    int
	timeout time.Duration

	// dummyHash is compared against when the email is unknown so that a
	// missing user costs the same as a wrong password.
	dummyHash []byte
}

// NewUserService creates a new UserServicer hashing with the given bcrypt cost.
func NewUserService(db *gorm.DB, cost int, timeout time.Duration) UserServicer {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("ledger-timing-equalizer"), cost)
	if err != nil {
		dummy = nil
	}
	return &userService{db: db, cost: cost, timeout: timeout, dummyHash: dummy}
}

// Register creates a user with a bcrypt hash of password.
func (s *userService) Register(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}
	if len(password) > maxPasswordBytes {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "password must be at most 72 bytes")
	}

	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, storeError(err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
	}

	// The unique index settles a race between two registrations that both
	// passed the count check.
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, storeError(err)
	}

	return user, nil
}

// Verify checks a password against the stored hash for email.
// It returns ErrUserNotFound or ErrInvalidCredentials on failure.
func (s *userService) Verify(ctx context.Context, email, password string) (*models.User, error) {
	// No stored hash can match a password bcrypt refuses to hash.
	if len(password) > maxPasswordBytes {
		return nil, apperrors.ErrInvalidCredentials
	}

	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if s.dummyHash != nil {
				_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			}
			return nil, apperrors.ErrUserNotFound
		}
		return nil, storeError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if !uuid.IsValid(id) {
		return nil, apperrors.ErrUserNotFound
	}

	ctx, cancel := storeContext(ctx, s.timeout)
	defer cancel()

	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, storeError(err)
	}
	return &user, nil
}
