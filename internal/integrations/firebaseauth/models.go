package firebaseauth

// Session результат успешного входа по e-mail и паролю
type Session struct {
	UID          string
	Email        string
	DisplayName  string
	IDToken      string
	RefreshToken string
	ExpiresIn    string // секунды, строкой как в ответе Identity Toolkit
}

// User пользователь Firebase
type User struct {
	UID         string
	Email       string
	DisplayName string
	PhoneNumber string // E.164
}

// signInRequest тело запроса accounts:signInWithPassword
type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// signInResponse ответ accounts:signInWithPassword
type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// ErrorResponse модель ошибки Identity Toolkit
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
