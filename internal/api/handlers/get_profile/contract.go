package get_profile

import (
	"context"

	"github.com/m04kA/OdontoBooking/internal/service/auth/models"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
