package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-progress-keeper/internal/crypto"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/store"
	"github.com/MKhiriev/go-progress-keeper/internal/streak"
	"github.com/MKhiriev/go-progress-keeper/models"
)

type userService struct {
	userRepository store.UserRepository
	codec          crypto.Codec
	calc           *streak.Calculator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, codec crypto.Codec, calc *streak.Calculator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		codec:          codec,
		calc:           calc,
		logger:         logger,
	}
}

// EnsureUser creates the profile row on first contact and returns the
// decrypted profile.
func (s *userService) EnsureUser(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.EnsureUser(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error ensuring user: %w", err)
	}

	return s.decryptUser(ctx, user), nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting profile: %w", err)
	}

	return s.decryptUser(ctx, user), nil
}

// UpdateProfile replaces display name, goal and start date. The start date
// is normalised to the start of its day.
func (s *userService) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.StartDate != nil {
		start := s.calc.DayOf(*user.StartDate)
		user.StartDate = &start
	}

	updated, err := s.userRepository.UpdateUser(ctx, s.encryptUser(ctx, user))
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateProfile").Msg("error updating profile")
		return models.User{}, fmt.Errorf("error updating profile: %w", err)
	}

	return s.decryptUser(ctx, updated), nil
}

func (s *userService) SetStartDate(ctx context.Context, userID string, start time.Time) (models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	user.StartDate = &start

	return s.UpdateProfile(ctx, user)
}

func (s *userService) encryptUser(ctx context.Context, user models.User) models.User {
	rec := s.codec.EncryptFields(ctx, userRecord(user), models.EncryptedFields.UserData, user.UserID)
	user.DisplayName, _ = rec["displayName"].(string)
	user.Goal, _ = rec["goal"].(string)

	return user
}

func (s *userService) decryptUser(ctx context.Context, user models.User) models.User {
	rec := s.codec.DecryptFields(ctx, userRecord(user), models.EncryptedFields.UserData, user.UserID)
	user.DisplayName, _ = rec["displayName"].(string)
	user.Goal, _ = rec["goal"].(string)

	return user
}

func userRecord(user models.User) models.Record {
	return models.Record{"displayName": user.DisplayName, "goal": user.Goal}
}
