package auth

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/OdontoBooking/internal/domain"
)

var (
	// ErrProviderUnavailable возвращается, когда провайдер аутентификации недоступен
	ErrProviderUnavailable = fmt.Errorf("auth: provider unavailable: %w", domain.ErrAuth)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)

// ValidationError ошибки полей формы. Ключ - имя поля в JSON, значение - сообщение для пациента
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "auth: invalid form: " + strings.Join(parts, "; ")
}

// Unwrap позволяет проверять класс ошибки через errors.Is(err, domain.ErrValidation)
func (e *ValidationError) Unwrap() error {
	return domain.ErrValidation
}
