package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/OdontoBooking/internal/domain"
)

// Repository in-memory хранилище бронирований. Единственный владелец данных:
// наружу всегда отдаются копии, изменение возможно только через Create и Cancel.
type Repository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Booking
	newID func() string
	now   func() time.Time
}

// NewRepository создает пустое хранилище
func NewRepository() *Repository {
	return &Repository{
		byID:  make(map[string]*domain.Booking),
		newID: func() string { return uuid.NewString() },
		now:   time.Now,
	}
}

// Create сохраняет новое бронирование и присваивает ему уникальный ID.
// Если ID уже задан (seed данные), он используется как есть.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrInvalidBooking
	}

	stored := booking.Clone()
	now := r.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	if stored.ID == "" {
		stored.ID = r.newID()
	}
	if _, exists := r.byID[stored.ID]; exists {
		return nil, fmt.Errorf("%w: id=%s", ErrDuplicateID, stored.ID)
	}

	r.byID[stored.ID] = stored
	return stored.Clone(), nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return booking.Clone(), nil
}

// GetByUserID получает все бронирования пользователя в произвольном порядке.
// Порядок отображения определяется слоем представления.
func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, booking := range r.byID {
		if booking.UserID == userID {
			result = append(result, booking.Clone())
		}
	}
	return result, nil
}

// Cancel переводит бронирование в статус отмены.
// Проверка статуса выполняется под блокировкой, поэтому две параллельные отмены
// не могут обе пройти успешно.
func (r *Repository) Cancel(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	if !booking.HasCancellableStatus() {
		return nil, fmt.Errorf("%w: id=%s status=%s", ErrCannotCancel, id, booking.Status)
	}

	now := r.now()
	booking.Status = status
	booking.CancelledAt = &now
	booking.UpdatedAt = now

	return booking.Clone(), nil
}

// Count возвращает количество бронирований в хранилище
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
