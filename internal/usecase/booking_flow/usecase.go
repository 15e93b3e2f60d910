package booking_flow

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/m04kA/OdontoBooking/internal/domain"
	bookingModels "github.com/m04kA/OdontoBooking/internal/service/bookings/models"
	"github.com/m04kA/OdontoBooking/internal/service/navigation"
	"github.com/m04kA/OdontoBooking/pkg/metrics"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

// session состояние выбора одного пациента
type session struct {
	state      domain.SelectionState
	seq        uint64 // номер последнего запроса слотов, старые результаты отбрасываются
	confirming bool   // подтверждение записи выполняется прямо сейчас
}

// UseCase машина состояний выбора даты и времени записи.
// Каждый пациент имеет независимую сессию, все переходы выполняются под одним мьютексом.
// Единственная асинхронная операция - поиск слотов, она выполняется вне мьютекса.
type UseCase struct {
	availability  AvailabilityTable
	confirmer     BookingConfirmer
	navigator     Navigator
	clock         Clock
	recorder      LookupRecorder
	logger        Logger
	lookupTimeout time.Duration
	defaultProc   string

	mu       sync.Mutex
	sessions *lru.Cache[string, *session] // давно неактивные сессии вытесняются
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityTable,
	confirmer BookingConfirmer,
	navigator Navigator,
	clock Clock,
	recorder LookupRecorder,
	logger Logger,
	lookupTimeout time.Duration,
	defaultProcedure string,
	maxSessions int,
) *UseCase {
	if lookupTimeout <= 0 {
		lookupTimeout = time.Duration(domain.DefaultLookupTimeoutMs) * time.Millisecond
	}
	if defaultProcedure == "" {
		defaultProcedure = domain.DefaultProcedureName
	}
	if maxSessions <= 0 {
		maxSessions = domain.DefaultMaxSessions
	}
	// lru.New возвращает ошибку только для size <= 0
	sessions, _ := lru.New[string, *session](maxSessions)
	return &UseCase{
		availability:  availability,
		confirmer:     confirmer,
		navigator:     navigator,
		clock:         clock,
		recorder:      recorder,
		logger:        logger,
		lookupTimeout: lookupTimeout,
		defaultProc:   defaultProcedure,
		sessions:      sessions,
	}
}

// Start открывает экран записи: сбрасывает сессию в Browsing и запоминает процедуру.
// Если процедура не передана, берется параметр preselectedProcedure текущего экрана.
// Пока выполняется подтверждение записи, сессию сбросить нельзя.
func (uc *UseCase) Start(ctx context.Context, req StartRequest) (domain.SelectionState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s := uc.sessionLocked(req.UserID)
	if s.confirming {
		uc.logger.Warn("Start: confirmation in progress for user=%s", req.UserID)
		return snapshot(s), ErrConfirmInProgress
	}

	procedure := strings.TrimSpace(req.PreselectedProcedure)

	current := uc.navigator.Current(req.UserID)
	if procedure == "" && current.Screen == navigation.ScreenBooking {
		procedure = current.Params[navigation.ParamPreselectedProcedure]
	}
	if current.Screen != navigation.ScreenBooking || req.PreselectedProcedure != "" {
		params := map[string]string{}
		if procedure != "" {
			params[navigation.ParamPreselectedProcedure] = procedure
		}
		uc.navigator.NavigateTo(req.UserID, navigation.ScreenBooking, params)
	}

	if procedure == "" {
		procedure = uc.defaultProc
	}

	s.seq++ // незавершенный поиск слотов прошлой сессии становится устаревшим
	s.state = domain.SelectionState{State: domain.FlowBrowsing, ProcedureName: procedure}

	uc.logger.Info("Start: user=%s, procedure=%q", req.UserID, procedure)
	return snapshot(s), nil
}

// State возвращает снимок состояния выбора пациента
func (uc *UseCase) State(userID string) domain.SelectionState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return snapshot(uc.sessionLocked(userID))
}

// Pick выбирает дату в календаре и запускает асинхронный поиск слотов.
// Прошедшие даты игнорируются без ошибки, состояние не меняется.
// Возвращаемый канал закрывается, когда результат поиска применен или отброшен.
func (uc *UseCase) Pick(ctx context.Context, req PickRequest) (<-chan struct{}, error) {
	done := make(chan struct{})

	date, err := parseDate(req.Date)
	if err != nil {
		uc.logger.Warn("Pick: invalid date %q for user=%s: %v", req.Date, req.UserID, err)
		return nil, err
	}

	if date.Before(uc.clock.Today()) {
		uc.logger.Info("Pick: past date %s ignored for user=%s", date, req.UserID)
		close(done)
		return done, nil
	}

	uc.mu.Lock()
	s := uc.sessionLocked(req.UserID)
	if s.state.State != domain.FlowBrowsing && s.state.State != domain.FlowLoadingTimes {
		state := s.state.State
		uc.mu.Unlock()
		uc.logger.Warn("Pick: not allowed in state=%s for user=%s", state, req.UserID)
		return nil, fmt.Errorf("%w: pick in %s", ErrInvalidState, state)
	}

	s.seq++
	tag := lookupTag{date: date, seq: s.seq}
	s.state.State = domain.FlowLoadingTimes
	s.state.SelectedDate = date
	s.state.SelectedTime = ""
	s.state.AvailableTimes = nil
	s.state.IsLoadingTimes = true
	s.state.ShowingTimeSlotPane = false
	s.state.LastError = ""
	uc.mu.Unlock()

	uc.logger.Info("Pick: user=%s, date=%s, lookup #%d started", req.UserID, date, tag.seq)

	go func() {
		defer close(done)

		lookupCtx, cancel := context.WithTimeout(context.Background(), uc.lookupTimeout)
		defer cancel()

		slots, err := uc.availability.Lookup(lookupCtx, date)
		uc.applyLookup(req.UserID, tag, slots, err)
	}()

	return done, nil
}

// SelectTime выбирает время среди загруженных слотов. Повторный выбор заменяет предыдущий
func (uc *UseCase) SelectTime(ctx context.Context, req SelectTimeRequest) (domain.SelectionState, error) {
	t, err := parseTime(req.Time)
	if err != nil {
		uc.logger.Warn("SelectTime: invalid time %q for user=%s: %v", req.Time, req.UserID, err)
		return domain.SelectionState{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	s := uc.sessionLocked(req.UserID)
	if s.state.State != domain.FlowChoosingTime {
		uc.logger.Warn("SelectTime: not allowed in state=%s for user=%s", s.state.State, req.UserID)
		return snapshot(s), fmt.Errorf("%w: select time in %s", ErrInvalidState, s.state.State)
	}

	if !s.state.HasTime(t) {
		uc.logger.Warn("SelectTime: time %s is not available on %s for user=%s", t, s.state.SelectedDate, req.UserID)
		return snapshot(s), ErrTimeNotAvailable
	}

	s.state.SelectedTime = t
	return snapshot(s), nil
}

// RequestConfirm переводит сессию в Confirming, если выбраны дата и время
func (uc *UseCase) RequestConfirm(ctx context.Context, userID string) (domain.SelectionState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s := uc.sessionLocked(userID)
	if s.state.State != domain.FlowChoosingTime {
		uc.logger.Warn("RequestConfirm: not allowed in state=%s for user=%s", s.state.State, userID)
		return snapshot(s), fmt.Errorf("%w: request confirm in %s", ErrInvalidState, s.state.State)
	}

	if !s.state.CanRequestConfirm() {
		uc.logger.Warn("RequestConfirm: selection incomplete for user=%s", userID)
		return snapshot(s), ErrSelectionIncomplete
	}

	s.state.State = domain.FlowConfirming
	uc.logger.Info("RequestConfirm: user=%s awaits confirmation of %s %s",
		userID, s.state.SelectedDate, s.state.SelectedTime)
	return snapshot(s), nil
}

// UserConfirms подтверждает запись. Повторный вызов во время подтверждения отклоняется.
// При ошибке сессия остается в Confirming, при успехе сбрасывается в Browsing.
func (uc *UseCase) UserConfirms(ctx context.Context, userID string) (*domain.Booking, error) {
	uc.mu.Lock()
	s := uc.sessionLocked(userID)
	if s.state.State != domain.FlowConfirming {
		state := s.state.State
		uc.mu.Unlock()
		uc.logger.Warn("UserConfirms: not allowed in state=%s for user=%s", state, userID)
		return nil, fmt.Errorf("%w: confirm in %s", ErrInvalidState, state)
	}
	if s.confirming {
		uc.mu.Unlock()
		uc.logger.Warn("UserConfirms: duplicate submission for user=%s", userID)
		return nil, ErrConfirmInProgress
	}

	s.confirming = true
	req := &bookingModels.ConfirmRequest{
		UserID:        userID,
		Date:          s.state.SelectedDate,
		Time:          s.state.SelectedTime,
		ProcedureName: s.state.ProcedureName,
	}
	uc.mu.Unlock()

	booking, err := uc.confirmer.Confirm(ctx, req)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	s.confirming = false

	if err != nil {
		uc.logger.Error("UserConfirms: failed to confirm for user=%s: %v", userID, err)
		return nil, fmt.Errorf("booking_flow: confirm: %w", err)
	}

	s.seq++
	s.state = domain.SelectionState{State: domain.FlowBrowsing, ProcedureName: s.state.ProcedureName}

	uc.logger.Info("UserConfirms: booking id=%s created for user=%s", booking.ID, userID)
	return booking, nil
}

// UserCancels закрывает диалог подтверждения и возвращает к выбору времени
func (uc *UseCase) UserCancels(ctx context.Context, userID string) (domain.SelectionState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s := uc.sessionLocked(userID)
	if s.state.State != domain.FlowConfirming {
		uc.logger.Warn("UserCancels: not allowed in state=%s for user=%s", s.state.State, userID)
		return snapshot(s), fmt.Errorf("%w: dismiss confirmation in %s", ErrInvalidState, s.state.State)
	}
	if s.confirming {
		return snapshot(s), ErrConfirmInProgress
	}

	s.state.State = domain.FlowChoosingTime
	return snapshot(s), nil
}

// BackToCalendar возвращает к календарю из любого состояния.
// Время и слоты сбрасываются, выбранная дата остается подсвеченной.
func (uc *UseCase) BackToCalendar(ctx context.Context, userID string) (domain.SelectionState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s := uc.sessionLocked(userID)
	if s.confirming {
		return snapshot(s), ErrConfirmInProgress
	}

	s.seq++
	s.state.State = domain.FlowBrowsing
	s.state.SelectedTime = ""
	s.state.AvailableTimes = nil
	s.state.IsLoadingTimes = false
	s.state.ShowingTimeSlotPane = false
	return snapshot(s), nil
}

// applyLookup применяет результат поиска слотов, если он все еще актуален
func (uc *UseCase) applyLookup(userID string, tag lookupTag, slots []types.TimeString, lookupErr error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions.Peek(userID)
	if !ok || s.seq != tag.seq || s.state.SelectedDate != tag.date || s.state.State != domain.FlowLoadingTimes {
		uc.recorder.LookupFinished(metrics.LookupStale)
		uc.logger.Info("applyLookup: stale lookup #%d for %s discarded, user=%s", tag.seq, tag.date, userID)
		return
	}

	if lookupErr != nil {
		uc.recorder.LookupFinished(metrics.LookupFailed)
		uc.logger.Error("applyLookup: lookup for %s failed, user=%s: %v", tag.date, userID, lookupErr)

		s.state.State = domain.FlowBrowsing
		s.state.SelectedDate = ""
		s.state.IsLoadingTimes = false
		s.state.LastError = MsgLookupFailed
		return
	}

	times := make([]types.TimeString, len(slots))
	copy(times, slots)

	s.state.State = domain.FlowChoosingTime
	s.state.AvailableTimes = times
	s.state.IsLoadingTimes = false
	s.state.ShowingTimeSlotPane = true

	uc.recorder.LookupFinished(metrics.LookupResolved)
	uc.logger.Info("applyLookup: %d slots for %s, user=%s", len(times), tag.date, userID)
}

func (uc *UseCase) sessionLocked(userID string) *session {
	s, ok := uc.sessions.Get(userID)
	if !ok {
		s = &session{state: domain.SelectionState{State: domain.FlowBrowsing, ProcedureName: uc.defaultProc}}
		uc.sessions.Add(userID, s)
	}
	return s
}

// snapshot копирует состояние, чтобы вызывающий не разделял слайс слотов с сессией
func snapshot(s *session) domain.SelectionState {
	state := s.state
	if s.state.AvailableTimes != nil {
		state.AvailableTimes = make([]types.TimeString, len(s.state.AvailableTimes))
		copy(state.AvailableTimes, s.state.AvailableTimes)
	}
	return state
}
