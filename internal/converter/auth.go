package converter

import (
	dto "lotto_backend/internal/api/dto/auth"
	"lotto_backend/internal/model"
	"strings"
)

func RegisterRequestToUserModel(req *dto.RegisterRequest) *model.User {
	return &model.User{
		Name:     req.Name,
		Login:    strings.TrimSpace(req.Login),
		Password: req.Password,
	}
}
