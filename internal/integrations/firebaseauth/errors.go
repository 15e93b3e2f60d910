package firebaseauth

import (
	"errors"
	"fmt"

	"github.com/m04kA/OdontoBooking/internal/domain"
)

var (
	// ErrInvalidCredentials возвращается при неверном e-mail или пароле
	ErrInvalidCredentials = fmt.Errorf("firebaseauth: invalid credentials: %w", domain.ErrAuth)

	// ErrUserDisabled возвращается, когда учетная запись отключена
	ErrUserDisabled = fmt.Errorf("firebaseauth: user disabled: %w", domain.ErrAuth)

	// ErrTooManyAttempts возвращается, когда Firebase временно заблокировал вход
	ErrTooManyAttempts = fmt.Errorf("firebaseauth: too many attempts: %w", domain.ErrAuth)

	// ErrEmailAlreadyExists возвращается при регистрации с уже занятым e-mail
	ErrEmailAlreadyExists = fmt.Errorf("firebaseauth: email already exists: %w", domain.ErrAuth)

	// ErrPhoneAlreadyExists возвращается, когда телефон привязан к другой учетной записи
	ErrPhoneAlreadyExists = fmt.Errorf("firebaseauth: phone number already exists: %w", domain.ErrInvalidState)

	// ErrUserNotFound возвращается, когда учетной записи с таким UID нет
	ErrUserNotFound = fmt.Errorf("firebaseauth: user not found: %w", domain.ErrNotFound)

	// ErrInvalidToken возвращается, когда ID token не прошел проверку
	ErrInvalidToken = fmt.Errorf("firebaseauth: invalid id token: %w", domain.ErrAuth)

	// ErrNotConfigured возвращается, когда Admin SDK не инициализирован
	ErrNotConfigured = errors.New("firebaseauth client: admin sdk is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("firebaseauth client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Firebase
	ErrInvalidResponse = errors.New("firebaseauth client: invalid response")
)
