package auth

import (
	"context"
	"fmt"
	"lotto_backend/internal/model"
	"lotto_backend/pkg/pass"
	"strings"
)

func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	if len(strings.TrimSpace(user.Login)) == 0 || len(user.Password) == 0 {
		return nil, fmt.Errorf("%w: login and password are required", model.ErrInvalidCredentials)
	}

	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash

	var data *model.AuthData

	// The user and the first session are created together.
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		user.ID, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}

		data, err = s.openSession(ctx, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}
