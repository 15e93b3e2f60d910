package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/OdontoBooking/internal/domain"
	bookingRepo "github.com/m04kA/OdontoBooking/internal/infra/storage/booking"
	"github.com/m04kA/OdontoBooking/internal/service/bookings/models"
)

// Service сервис бронирований: подтверждение записи, двухфазная отмена и списки
type Service struct {
	bookingRepo BookingRepository
	catalog     Catalog
	clock       Clock
	metrics     MetricsRecorder
	logger      Logger

	mu            sync.Mutex
	cancelIntents map[string]string // userID -> bookingID, ожидающий подтверждения отмены
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalog Catalog,
	clock Clock,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		catalog:       catalog,
		clock:         clock,
		metrics:       metrics,
		logger:        logger,
		cancelIntents: make(map[string]string),
	}
}

// Confirm создает подтверждённое бронирование из выбранных даты и времени.
// Повторно валидирует вход, даже если машина состояний уже это сделала.
// Один успешный вызов создает ровно одно бронирование.
func (s *Service) Confirm(ctx context.Context, req *models.ConfirmRequest) (*domain.Booking, error) {
	s.logger.Info("Confirm: user=%s, date=%s, time=%s, procedure=%q",
		req.UserID, req.Date, req.Time, req.ProcedureName)

	today := s.clock.Today()
	if err := validateConfirmRequest(req, today); err != nil {
		s.logger.Warn("Confirm: validation failed for user=%s: %v", req.UserID, err)
		return nil, err
	}

	procedure := strings.TrimSpace(req.ProcedureName)
	if procedure == "" {
		procedure = domain.DefaultProcedureName
	}

	created, err := s.bookingRepo.Create(ctx, &domain.Booking{
		UserID:           req.UserID,
		Date:             req.Date,
		Time:             req.Time,
		ProcedureName:    procedure,
		ProfessionalName: s.catalog.ProfessionalFor(procedure),
		Status:           domain.StatusConfirmed,
	})
	if err != nil {
		s.logger.Error("Confirm: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	s.metrics.BookingConfirmed()
	s.logger.Info("Confirm: created booking id=%s for user=%s", created.ID, req.UserID)
	return created, nil
}

// GetBooking возвращает бронирование пациента по ID
func (s *Service) GetBooking(ctx context.Context, userID, bookingID string) (*models.BookingResponse, error) {
	booking, err := s.getOwned(ctx, "GetBooking", userID, bookingID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking, s.clock.Today()), nil
}

// RequestCancel первая фаза отмены: проверяет, что бронирование можно отменить,
// и запоминает намерение пациента. Состояние бронирования не меняется.
func (s *Service) RequestCancel(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	s.logger.Info("RequestCancel: user=%s, booking=%s", userID, bookingID)

	booking, err := s.getOwned(ctx, "RequestCancel", userID, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled(s.clock.Today()) {
		s.logger.Warn("RequestCancel: booking id=%s cannot be cancelled, status=%s, date=%s",
			bookingID, booking.Status, booking.Date)
		return nil, ErrCannotCancel
	}

	s.mu.Lock()
	s.cancelIntents[userID] = bookingID
	s.mu.Unlock()

	return booking, nil
}

// AbortCancel отказ пациента от отмены: намерение удаляется, ничего не меняется
func (s *Service) AbortCancel(userID, bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelIntents[userID] != bookingID {
		return ErrCancellationNotRequested
	}
	delete(s.cancelIntents, userID)

	s.logger.Info("AbortCancel: user=%s kept booking=%s", userID, bookingID)
	return nil
}

// Cancel вторая фаза отмены: переводит бронирование в cancelled_by_user.
// Требует предварительного RequestCancel для того же бронирования.
func (s *Service) Cancel(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	s.logger.Info("Cancel: user=%s, booking=%s", userID, bookingID)

	if !s.takeIntent(userID, bookingID) {
		s.logger.Warn("Cancel: no pending cancellation for user=%s booking=%s", userID, bookingID)
		return nil, ErrCancellationNotRequested
	}

	booking, err := s.getOwned(ctx, "Cancel", userID, bookingID)
	if err != nil {
		return nil, err
	}

	// Дата могла пройти между двумя фазами
	if !booking.CanBeCancelled(s.clock.Today()) {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s, date=%s",
			bookingID, booking.Status, booking.Date)
		return nil, ErrCannotCancel
	}

	cancelled, err := s.bookingRepo.Cancel(ctx, bookingID, domain.StatusCancelledByUser)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrCannotCancel):
			s.logger.Warn("Cancel: booking id=%s changed status concurrently", bookingID)
			return nil, ErrCannotCancel
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.metrics.BookingCancelled()
	s.logger.Info("Cancel: booking id=%s cancelled by user=%s", bookingID, userID)
	return cancelled, nil
}

// ListBookings возвращает представление upcoming или past для пациента
func (s *Service) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListBookings: user=%s, view=%s", req.UserID, req.View)

	view := req.View
	if view == "" {
		view = domain.ViewUpcoming
	}
	if view != domain.ViewUpcoming && view != domain.ViewPast {
		s.logger.Warn("ListBookings: invalid view=%q for user=%s", req.View, req.UserID)
		return nil, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, req.View)
	}

	list, err := s.bookingRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		s.logger.Error("ListBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	today := s.clock.Today()
	upcoming, past := Partition(list, today)

	selected := upcoming
	if view == domain.ViewPast {
		selected = past
	}

	s.logger.Info("ListBookings: %d bookings in view=%s for user=%s", len(selected), view, req.UserID)
	return models.FromDomainBookingList(selected, view, today), nil
}

// Вспомогательные методы

func (s *Service) getOwned(ctx context.Context, op, userID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("%s: access denied for user=%s to booking id=%s", op, userID, bookingID)
		return nil, ErrAccessDenied
	}
	return booking, nil
}

// takeIntent проверяет и удаляет намерение отмены
func (s *Service) takeIntent(userID, bookingID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelIntents[userID] != bookingID {
		return false
	}
	delete(s.cancelIntents, userID)
	return true
}
