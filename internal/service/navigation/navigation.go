package navigation

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/m04kA/OdontoBooking/internal/domain"
)

// Screen идентификатор экрана клиентского приложения
type Screen string

const (
	ScreenLogin      Screen = "Login"
	ScreenSignUp     Screen = "Cadastro"
	ScreenMainApp    Screen = "MainApp"
	ScreenBooking    Screen = "Agendamento"
	ScreenMyBookings Screen = "MeusAgendamentos"
	ScreenProcedures Screen = "Procedimentos"
)

// ParamPreselectedProcedure параметр экрана записи с предвыбранной процедурой
const ParamPreselectedProcedure = "preselectedProcedure"

// Entry экран в стеке навигации пользователя
type Entry struct {
	Screen Screen
	Params map[string]string
}

// Router хранит стек экранов каждого пользователя.
// Сервер не управляет UI напрямую: клиент читает текущий экран и его параметры.
// Стеки давно неактивных пользователей вытесняются, для них текущий экран снова Login.
type Router struct {
	mu     sync.Mutex
	stacks *lru.Cache[string, []Entry]
}

// NewRouter создает пустой навигатор на maxUsers пользователей (0 - значение по умолчанию)
func NewRouter(maxUsers int) *Router {
	if maxUsers <= 0 {
		maxUsers = domain.DefaultMaxSessions
	}
	// lru.New возвращает ошибку только для size <= 0
	stacks, _ := lru.New[string, []Entry](maxUsers)
	return &Router{stacks: stacks}
}

// NavigateTo кладет экран на вершину стека пользователя
func (r *Router) NavigateTo(userID string, screen Screen, params map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stack, _ := r.stacks.Get(userID)
	r.stacks.Add(userID, append(stack, Entry{Screen: screen, Params: copyParams(params)}))
}

// ResetTo заменяет весь стек пользователя одним экраном
func (r *Router) ResetTo(userID string, screen Screen) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stacks.Add(userID, []Entry{{Screen: screen, Params: map[string]string{}}})
}

// Current возвращает текущий экран пользователя. По умолчанию - Login
func (r *Router) Current(userID string) Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	stack, _ := r.stacks.Get(userID)
	if len(stack) == 0 {
		return Entry{Screen: ScreenLogin, Params: map[string]string{}}
	}
	top := stack[len(stack)-1]
	return Entry{Screen: top.Screen, Params: copyParams(top.Params)}
}

// Back снимает экран со стека. Последний экран не снимается
func (r *Router) Back(userID string) Entry {
	r.mu.Lock()
	if stack, _ := r.stacks.Get(userID); len(stack) > 1 {
		r.stacks.Add(userID, stack[:len(stack)-1])
	}
	r.mu.Unlock()
	return r.Current(userID)
}

func copyParams(params map[string]string) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}
