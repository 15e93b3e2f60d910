package domain

import "errors"

// Базовая таксономия ошибок. Ошибки пакетов оборачивают их через %w,
// чтобы HTTP слой мог определить класс ошибки через errors.Is.
var (
	// ErrValidation не хватает даты/времени/обязательного поля, нужно переспросить пациента
	ErrValidation = errors.New("validation error")

	// ErrInvalidState операция недопустима в текущем статусе или состоянии, ничего не изменено
	ErrInvalidState = errors.New("invalid state")

	// ErrAuth ошибка провайдера аутентификации, можно повторить
	ErrAuth = errors.New("authentication error")

	// ErrNotFound сущность не найдена
	ErrNotFound = errors.New("not found")
)
