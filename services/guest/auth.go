package guest

import (
	"context"
	"fmt"
	"time"

	"innbook/models"
	"innbook/utils"

	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long an issued guest token stays valid.
const tokenTTL = 72 * time.Hour

// Authenticate verifies credentials and issues a signed token. The
// token hash is stored on the guest record and mirrored into the auth
// cache so the middleware can validate without a DB round trip.
func (s *DefaultGuestService) Authenticate(creds models.GuestCredentials) (*models.Guest, string, error) {
	guest, err := s.Repo.GetByEmailWithProjection(creds.Email, nil)
	if err != nil {
		return nil, "", err
	}
	if guest == nil {
		return nil, "", fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(guest.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, "", fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(guest.ID, guest.Email, tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(guest.ID, tokenHash); err != nil {
		return nil, "", err
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + guest.ID
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, time.Hour).Err(); err != nil {
		// Cache is an optimization; the DB record is authoritative.
		utils.GetLogger().Sugar().Warnf("failed to cache auth token for guest %s: %v", guest.ID, err)
	}

	guest.TokenHash = tokenHash
	return guest, token, nil
}

// RevokeToken invalidates the guest's current token.
func (s *DefaultGuestService) RevokeToken(id string) error {
	if err := s.Repo.SetTokenHash(id, ""); err != nil {
		return err
	}
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), utils.AuthCachePrefix+id).Err(); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to evict auth cache for guest %s: %v", id, err)
	}
	return nil
}
