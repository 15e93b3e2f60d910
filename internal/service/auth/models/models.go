package models

// Request модели

// SignInRequest запрос на вход
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpRequest запрос на регистрацию пациента
type SignUpRequest struct {
	FullName        string `json:"fullName" validate:"required"`
	CPF             string `json:"cpf" validate:"required,cpf"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,strong_password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	BirthDate       string `json:"birthDate" validate:"required,birth_date,min_age"` // "2000-01-31"
}

// UpdateProfileRequest изменение профиля пациента. Пустой телефон удаляет номер
type UpdateProfileRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,e164"` // "(34) 99999-8888" или "+5534999998888"
}

// Response модели

// SignInResponse ответ на успешный вход
type SignInResponse struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName,omitempty"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	NextScreen   string `json:"nextScreen"`
}

// SignUpResponse ответ на успешную регистрацию
type SignUpResponse struct {
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	NextScreen string `json:"nextScreen"`
}

// ProfileResponse профиль пациента
type ProfileResponse struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
}
