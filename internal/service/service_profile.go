package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sofyone/go-gig-desk/internal/logger"
	"github.com/sofyone/go-gig-desk/internal/store"
	"github.com/sofyone/go-gig-desk/models"
)

// profileService implements ProfileService on top of the user
// repository. Password changes are hashed here so that plaintext never
// crosses the storage boundary.
type profileService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Profile returns the account record of the given user.
func (p *profileService) Profile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// UpdateProfile applies a partial profile update. Empty fields in user
// are left untouched; a non-empty Password is bcrypt-hashed and replaces
// the stored hash.
func (p *profileService) UpdateProfile(ctx context.Context, userID int64, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	update := models.UserUpdate{UserID: userID}
	if user.Name != "" {
		update.Name = &user.Name
	}
	if user.Email != "" {
		update.Email = &user.Email
	}
	if user.ProfileImage != "" {
		update.ProfileImage = &user.ProfileImage
	}
	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Err(err).Int64("userID", userID).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
		}
		hashString := string(hash)
		update.PasswordHash = &hashString
	}

	if update.Name == nil && update.Email == nil && update.ProfileImage == nil && update.PasswordHash == nil {
		return models.User{}, ErrInvalidDataProvided
	}

	updatedUser, err := p.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updatedUser, nil
}
