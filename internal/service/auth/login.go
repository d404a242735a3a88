package auth

import (
	"context"
	"errors"
	"lotto_backend/internal/model"
	"lotto_backend/pkg/pass"
	"lotto_backend/pkg/token"
	"time"
)

func (s *serv) Login(ctx context.Context, login, password string) (*model.AuthData, error) {
	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrUnauthorized
		}
		return nil, err
	}

	if !pass.VerifyPassword(user.Password, password) {
		return nil, model.ErrUnauthorized
	}

	return s.openSession(ctx, user.ID)
}

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	return s.authRepo.DeleteSession(ctx, sessionID)
}

// openSession stores a new session for userID and issues its tokens.
func (s *serv) openSession(ctx context.Context, userID int) (*model.AuthData, error) {
	refreshToken, refreshHash, err := token.NewRefreshToken()
	if err != nil {
		return nil, err
	}

	sessionID := generateSessionID()
	err = s.authRepo.CreateSession(ctx, &model.Session{
		ID:           sessionID,
		UserID:       userID,
		RefreshToken: refreshHash,
		ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := token.GenerateAccessToken(
		userID,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
