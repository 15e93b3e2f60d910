package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/internal/integrations/firebaseauth"
	"github.com/m04kA/OdontoBooking/internal/service/auth/models"
	"github.com/m04kA/OdontoBooking/internal/service/navigation"
)

// Service сервис входа и регистрации пациентов
type Service struct {
	provider  Provider
	navigator Navigator
	validate  *validator.Validate
	logger    Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(provider Provider, navigator Navigator, clock Clock, logger Logger) *Service {
	return &Service{
		provider:  provider,
		navigator: navigator,
		validate:  newValidator(clock),
		logger:    logger,
	}
}

// SignIn выполняет вход. При успехе стек навигации пациента сбрасывается на главный экран
func (s *Service) SignIn(ctx context.Context, req *models.SignInRequest) (*models.SignInResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	s.logger.Info("SignIn: email=%s", req.Email)

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("SignIn: validation failed: %v", err)
		return nil, toValidationError(err)
	}

	session, err := s.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.providerError("SignIn", err)
	}

	s.navigator.ResetTo(session.UID, navigation.ScreenMainApp)

	s.logger.Info("SignIn: uid=%s signed in", session.UID)
	return &models.SignInResponse{
		UserID:       session.UID,
		Email:        session.Email,
		DisplayName:  session.DisplayName,
		IDToken:      session.IDToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
		NextScreen:   string(navigation.ScreenMainApp),
	}, nil
}

// SignUp валидирует форму регистрации и создает пользователя.
// После регистрации пациент отправляется на экран входа.
func (s *Service) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.SignUpResponse, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.CPF = strings.TrimSpace(req.CPF)
	req.BirthDate = strings.TrimSpace(req.BirthDate)
	s.logger.Info("SignUp: email=%s", req.Email)

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("SignUp: validation failed: %v", err)
		return nil, toValidationError(err)
	}

	user, err := s.provider.SignUp(ctx, req.Email, req.Password, req.FullName)
	if err != nil {
		return nil, s.providerError("SignUp", err)
	}

	s.navigator.NavigateTo(user.UID, navigation.ScreenLogin, nil)

	s.logger.Info("SignUp: uid=%s registered", user.UID)
	return &models.SignUpResponse{
		UserID:     user.UID,
		Email:      user.Email,
		NextScreen: string(navigation.ScreenLogin),
	}, nil
}

// GetProfile возвращает профиль пациента
func (s *Service) GetProfile(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	user, err := s.provider.GetProfile(ctx, userID)
	if err != nil {
		return nil, s.providerError("GetProfile", err)
	}
	return toProfileResponse(user), nil
}

// UpdateProfile меняет имя и телефон пациента
func (s *Service) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = NormalizePhone(req.Phone)
	s.logger.Info("UpdateProfile: uid=%s", userID)

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("UpdateProfile: validation failed: %v", err)
		return nil, toValidationError(err)
	}

	user, err := s.provider.UpdateProfile(ctx, userID, req.FullName, req.Phone)
	if err != nil {
		return nil, s.providerError("UpdateProfile", err)
	}

	s.logger.Info("UpdateProfile: uid=%s updated", userID)
	return toProfileResponse(user), nil
}

func toProfileResponse(user *firebaseauth.User) *models.ProfileResponse {
	return &models.ProfileResponse{
		UserID:   user.UID,
		Email:    user.Email,
		FullName: user.DisplayName,
		Phone:    user.PhoneNumber,
	}
}

// providerError пропускает ошибки классов ErrAuth, ErrNotFound и ErrInvalidState как есть,
// остальные считает недоступностью провайдера
func (s *Service) providerError(op string, err error) error {
	if errors.Is(err, domain.ErrAuth) || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidState) {
		s.logger.Warn("%s: rejected by provider: %v", op, err)
		return err
	}
	s.logger.Error("%s: provider error: %v", op, err)
	return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
}
