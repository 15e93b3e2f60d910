package firebaseauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// DefaultIdentityURL адрес Identity Toolkit API
const DefaultIdentityURL = "https://identitytoolkit.googleapis.com"

// AdminAuth часть Firebase Admin SDK, которой пользуется клиент
type AdminAuth interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
	UpdateUser(ctx context.Context, uid string, user *auth.UserToUpdate) (*auth.UserRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Firebase Authentication.
// Вход по паролю идет через Identity Toolkit REST API, так как Admin SDK его не умеет.
// Регистрация и проверка токенов идут через Admin SDK.
type Client struct {
	identityURL string
	apiKey      string
	httpClient  *http.Client
	admin       AdminAuth
	log         Logger
}

// NewAdminAuth инициализирует Firebase App из файла сервисного аккаунта и возвращает Auth клиент
func NewAdminAuth(ctx context.Context, credentialsFile string) (*auth.Client, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("%w: error initializing app: %v", ErrInternal, err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: error getting Auth client: %v", ErrInternal, err)
	}
	return client, nil
}

// NewClient создает новый экземпляр клиента Firebase Authentication
func NewClient(identityURL, apiKey string, timeout time.Duration, admin AdminAuth, log Logger) *Client {
	if identityURL == "" {
		identityURL = DefaultIdentityURL
	}
	return &Client{
		identityURL: strings.TrimRight(identityURL, "/"),
		apiKey:      apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		admin: admin,
		log:   log,
	}
}

// SignIn выполняет вход по e-mail и паролю
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	endpoint := fmt.Sprintf("%s/v1/accounts:signInWithPassword?key=%s", c.identityURL, url.QueryEscape(c.apiKey))

	body, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, decodeSignInError(resp.Body)
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var payload signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if payload.LocalID == "" || payload.IDToken == "" {
		return nil, fmt.Errorf("%w: response has no localId or idToken", ErrInvalidResponse)
	}

	c.log.Info("SignIn: user uid=%s signed in", payload.LocalID)
	return &Session{
		UID:          payload.LocalID,
		Email:        payload.Email,
		DisplayName:  payload.DisplayName,
		IDToken:      payload.IDToken,
		RefreshToken: payload.RefreshToken,
		ExpiresIn:    payload.ExpiresIn,
	}, nil
}

// SignUp создает пользователя с e-mail и паролем
func (c *Client) SignUp(ctx context.Context, email, password, displayName string) (*User, error) {
	if c.admin == nil {
		return nil, ErrNotConfigured
	}

	params := (&auth.UserToCreate{}).Email(email).Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	record, err := c.admin.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("%w: failed to create user: %v", ErrInternal, err)
	}

	c.log.Info("SignUp: user uid=%s created", record.UID)
	return toUser(record), nil
}

// VerifyToken проверяет Firebase ID token и возвращает UID пользователя
func (c *Client) VerifyToken(ctx context.Context, idToken string) (string, error) {
	if c.admin == nil {
		return "", ErrNotConfigured
	}

	token, err := c.admin.VerifyIDToken(ctx, idToken)
	if err != nil {
		c.log.Warn("VerifyToken: rejected token: %v", err)
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return token.UID, nil
}

// GetProfile возвращает профиль пользователя из Firebase
func (c *Client) GetProfile(ctx context.Context, uid string) (*User, error) {
	if c.admin == nil {
		return nil, ErrNotConfigured
	}

	record, err := c.admin.GetUser(ctx, uid)
	if err != nil {
		return nil, userError(err)
	}
	return toUser(record), nil
}

// UpdateProfile меняет имя и телефон пользователя. Пустой телефон удаляет номер из профиля
func (c *Client) UpdateProfile(ctx context.Context, uid, displayName, phoneNumber string) (*User, error) {
	if c.admin == nil {
		return nil, ErrNotConfigured
	}

	params := (&auth.UserToUpdate{}).DisplayName(displayName).PhoneNumber(phoneNumber)
	record, err := c.admin.UpdateUser(ctx, uid, params)
	if err != nil {
		if auth.IsPhoneNumberAlreadyExists(err) {
			return nil, ErrPhoneAlreadyExists
		}
		return nil, userError(err)
	}

	c.log.Info("UpdateProfile: user uid=%s updated", record.UID)
	return toUser(record), nil
}

func userError(err error) error {
	if auth.IsUserNotFound(err) {
		return ErrUserNotFound
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

func toUser(record *auth.UserRecord) *User {
	if record == nil || record.UserInfo == nil {
		return &User{}
	}
	return &User{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		PhoneNumber: record.PhoneNumber,
	}
}

// decodeSignInError переводит код ошибки Identity Toolkit в ошибку клиента
func decodeSignInError(body io.Reader) error {
	var errResp ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err != nil {
		return fmt.Errorf("%w: failed to decode error response: %v", ErrInvalidResponse, err)
	}

	// Сообщение может содержать пояснение: "TOO_MANY_ATTEMPTS_TRY_LATER : ..."
	code := strings.TrimSpace(strings.SplitN(errResp.Error.Message, ":", 2)[0])
	switch code {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "INVALID_EMAIL", "MISSING_PASSWORD":
		return ErrInvalidCredentials
	case "USER_DISABLED":
		return ErrUserDisabled
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return ErrTooManyAttempts
	default:
		return fmt.Errorf("%w: %s", ErrInvalidResponse, errResp.Error.Message)
	}
}
