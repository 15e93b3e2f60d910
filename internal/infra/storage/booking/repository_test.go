package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OdontoBooking/internal/domain"
	"github.com/m04kA/OdontoBooking/pkg/types"
)

func newConfirmed(userID string, date types.Date) *domain.Booking {
	return &domain.Booking{
		UserID:        userID,
		Date:          date,
		Time:          "09:00",
		ProcedureName: "Limpeza",
		Status:        domain.StatusConfirmed,
	}
}

func TestRepository_CreateAssignsUniqueIDs(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	ids := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		created, err := repo.Create(ctx, newConfirmed("u1", "2025-06-10"))
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		ids[created.ID] = struct{}{}
	}

	assert.Len(t, ids, 50)
	assert.Equal(t, 50, repo.Count())
}

func TestRepository_CreateRejectsDuplicateID(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	b := newConfirmed("u1", "2025-06-10")
	b.ID = "fixed"
	_, err := repo.Create(ctx, b)
	require.NoError(t, err)

	_, err = repo.Create(ctx, b)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 1, repo.Count())
}

func TestRepository_ReturnsCopies(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newConfirmed("u1", "2025-06-10"))
	require.NoError(t, err)

	created.Status = domain.StatusCompleted
	created.ProcedureName = "changed"

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
	assert.Equal(t, "Limpeza", stored.ProcedureName)
}

func TestRepository_GetByUserID(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, _ = repo.Create(ctx, newConfirmed("u1", "2025-06-10"))
	_, _ = repo.Create(ctx, newConfirmed("u1", "2025-06-11"))
	_, _ = repo.Create(ctx, newConfirmed("u2", "2025-06-12"))

	list, err := repo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.GetByUserID(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_CancelOnlyChangesStatus(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newConfirmed("u1", "2025-06-10"))
	require.NoError(t, err)

	cancelled, err := repo.Cancel(ctx, created.ID, domain.StatusCancelledByUser)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelledByUser, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)
	assert.Equal(t, created.Date, cancelled.Date)
	assert.Equal(t, created.Time, cancelled.Time)
	assert.Equal(t, created.ProcedureName, cancelled.ProcedureName)
	assert.Equal(t, created.ProfessionalName, cancelled.ProfessionalName)
}

func TestRepository_CancelTerminalBooking(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	b := newConfirmed("u1", "2025-06-10")
	b.Status = domain.StatusCompleted
	created, err := repo.Create(ctx, b)
	require.NoError(t, err)

	_, err = repo.Cancel(ctx, created.ID, domain.StatusCancelledByUser)
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = repo.Cancel(ctx, "missing", domain.StatusCancelledByUser)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_ConcurrentCancelSucceedsOnce(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newConfirmed("u1", "2025-06-10"))
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Cancel(ctx, created.ID, domain.StatusCancelledByUser); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestSeedDemo(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	n, err := SeedDemo(ctx, repo, "demo", "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	list, err := repo.GetByUserID(ctx, "demo")
	require.NoError(t, err)
	assert.Len(t, list, 7)
}
