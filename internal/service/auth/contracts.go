package auth

import (
	"context"

	"github.com/m04kA/OdontoBooking/internal/integrations/firebaseauth"
	"github.com/m04kA/OdontoBooking/internal/service/navigation"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

// Provider интерфейс провайдера аутентификации
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*firebaseauth.Session, error)
	SignUp(ctx context.Context, email, password, displayName string) (*firebaseauth.User, error)
	GetProfile(ctx context.Context, uid string) (*firebaseauth.User, error)
	UpdateProfile(ctx context.Context, uid, displayName, phoneNumber string) (*firebaseauth.User, error)
}

// Navigator интерфейс навигации клиентского приложения
type Navigator interface {
	NavigateTo(userID string, screen navigation.Screen, params map[string]string)
	ResetTo(userID string, screen navigation.Screen)
}

// Clock интерфейс для получения сегодняшней даты (проверка возраста)
type Clock interface {
	Today() types.Date
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
