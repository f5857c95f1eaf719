//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"netcafe-booking/internal/domain/pc"
	"netcafe-booking/internal/domain/reservation"
	"netcafe-booking/internal/domain/user"
	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/pkg/clock"
	"netcafe-booking/internal/pkg/lockmap"
	"netcafe-booking/internal/usecase/commands"
	"netcafe-booking/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// ----------------------------------------------------------------------------
// In-memory fakes backing the engine's ports. The reservation ledger mimics
// the database exclusion constraint so the backstop path is honest.
// ----------------------------------------------------------------------------

type storedRes struct {
	id, pcID, userID uuid.UUID
	start, end       time.Time
	status           reservation.Status
}

type storedPC struct {
	id     uuid.UUID
	status pc.Status
	rate   int64
}

type fakeStore struct {
	mu  sync.Mutex
	res map[uuid.UUID]*storedRes
	pcs map[uuid.UUID]*storedPC
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		res: make(map[uuid.UUID]*storedRes),
		pcs: make(map[uuid.UUID]*storedPC),
	}
}

func (s *fakeStore) addPC(status pc.Status, rate int64) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.pcs[id] = &storedPC{id: id, status: status, rate: rate}
	return id
}

func (s *fakeStore) pcStatus(id uuid.UUID) pc.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pcs[id].status
}

func (s *fakeStore) resStatus(id uuid.UUID) reservation.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.res[id].status
}

func (s *fakeStore) activeCount(pcID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.res {
		if r.pcID == pcID && r.status == reservation.StatusActive {
			n++
		}
	}
	return n
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Reservations() shared.ReservationRepository { return &fakeResRepo{store: t.store} }
func (t *fakeTx) PCs() shared.PCRepository                   { return &fakePCRepo{store: t.store} }
func (t *fakeTx) Rooms() shared.RoomRepository               { return nil }
func (t *fakeTx) Ratings() shared.RatingRepository           { return nil }
func (t *fakeTx) Reports() shared.ReportRepository           { return nil }

type fakeResRepo struct {
	store *fakeStore
}

func (r *fakeResRepo) Create(_ context.Context, res *reservation.Reservation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.res {
		if existing.pcID == res.PCID() && existing.status == reservation.StatusActive &&
			existing.start.Before(res.Slot().End()) && res.Slot().Start().Before(existing.end) {
			return infra.NewRepositoryError(infra.KindExclusion, "overlapping reservation", nil)
		}
	}
	r.store.res[res.ID()] = &storedRes{
		id:     res.ID(),
		pcID:   res.PCID(),
		userID: res.UserID(),
		start:  res.Slot().Start(),
		end:    res.Slot().End(),
		status: res.Status(),
	}
	return nil
}

func (r *fakeResRepo) Get(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return reconstruct(r.store.res[id])
}

func (r *fakeResRepo) SetStatus(_ context.Context, id uuid.UUID, status reservation.Status, _ time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored, ok := r.store.res[id]
	if !ok || stored.status != reservation.StatusActive {
		return infra.NewRepositoryError(infra.KindNotFound, "no active reservation", nil)
	}
	stored.status = status
	return nil
}

func (r *fakeResRepo) CompleteExpired(_ context.Context, now time.Time) ([]shared.ExpiredReservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var expired []shared.ExpiredReservation
	for _, stored := range r.store.res {
		if stored.status == reservation.StatusActive && !stored.end.After(now) {
			stored.status = reservation.StatusCompleted
			expired = append(expired, shared.ExpiredReservation{ID: stored.id, PCID: stored.pcID})
		}
	}
	return expired, nil
}

func (r *fakeResRepo) HasActiveCovering(_ context.Context, pcID uuid.UUID, at time.Time) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, stored := range r.store.res {
		if stored.pcID == pcID && stored.status == reservation.StatusActive &&
			!stored.start.After(at) && stored.end.After(at) {
			return true, nil
		}
	}
	return false, nil
}

type fakePCRepo struct {
	store *fakeStore
}

func (r *fakePCRepo) Create(context.Context, *pc.PC) error { return nil }
func (r *fakePCRepo) Get(context.Context, uuid.UUID) (*pc.PC, error) {
	return nil, infra.NewRepositoryError(infra.KindNotFound, "not implemented", nil)
}
func (r *fakePCRepo) Update(context.Context, *pc.PC) error    { return nil }
func (r *fakePCRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (r *fakePCRepo) SetStatus(_ context.Context, id uuid.UUID, status pc.Status, _ time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored, ok := r.store.pcs[id]
	if !ok || stored.status == pc.StatusDisabled {
		return nil
	}
	stored.status = status
	return nil
}

type fakeReader struct {
	store *fakeStore
}

func (f *fakeReader) ActiveEntries(_ context.Context, pcID uuid.UUID) ([]reservation.Entry, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var entries []reservation.Entry
	for _, stored := range f.store.res {
		if stored.pcID == pcID && stored.status == reservation.StatusActive {
			entries = append(entries, reservation.Entry{
				ID:       stored.id,
				Interval: reservation.Interval{Start: stored.start, End: stored.end},
			})
		}
	}
	return entries, nil
}

func (f *fakeReader) Get(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return reconstruct(f.store.res[id])
}

func reconstruct(stored *storedRes) (*reservation.Reservation, error) {
	if stored == nil {
		return nil, infra.NewRepositoryError(infra.KindNotFound, "reservation not found", nil)
	}
	slot, err := reservation.NewTimeSlot(stored.start, stored.end)
	if err != nil {
		return nil, err
	}
	return reservation.Reconstruct(stored.id, stored.pcID, stored.userID, slot, stored.status, stored.start, stored.start), nil
}

type fakePCReader struct {
	store *fakeStore
}

func (f *fakePCReader) Snapshot(_ context.Context, id uuid.UUID) (*shared.PCSnapshot, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	stored, ok := f.store.pcs[id]
	if !ok {
		return nil, infra.NewRepositoryError(infra.KindNotFound, "pc not found", nil)
	}
	return &shared.PCSnapshot{
		ID:              stored.id,
		Status:          stored.status,
		HourlyRateCents: stored.rate,
	}, nil
}

type fakeCache struct {
	mu      sync.Mutex
	marked  map[uuid.UUID]time.Time
	cleared int
}

func newFakeCache() *fakeCache {
	return &fakeCache{marked: make(map[uuid.UUID]time.Time)}
}

func (f *fakeCache) MarkReserved(_ context.Context, pcID uuid.UUID, until time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.marked[pcID] = until
	return nil
}

func (f *fakeCache) Clear(_ context.Context, pcID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.marked, pcID)
	f.cleared++
	return nil
}

// ----------------------------------------------------------------------------

type engineFixture struct {
	engine *commands.ReservationCommands
	store  *fakeStore
	cache  *fakeCache
	clock  *clock.MockClock
	pcID   uuid.UUID
}

func newFixture(t *testing.T) *engineFixture {
	t.Helper()
	store := newFakeStore()
	cache := newFakeCache()
	clk := clock.NewMockClock(base)
	policy := reservation.Policy{
		Granularity: time.Hour,
		Horizon:     30 * 24 * time.Hour,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	engine := commands.NewReservationCommands(
		&fakeUoW{store: store},
		&fakeReader{store: store},
		&fakePCReader{store: store},
		reservation.NewScheduleMap(),
		lockmap.New(),
		cache,
		policy,
		clk,
		logger,
	)

	return &engineFixture{
		engine: engine,
		store:  store,
		cache:  cache,
		clock:  clk,
		pcID:   store.addPC(pc.StatusAvailable, 800),
	}
}

func (f *engineFixture) request(t *testing.T, userID uuid.UUID, startOffset, endOffset time.Duration) (uuid.UUID, error) {
	t.Helper()
	return f.engine.Request(context.Background(), commands.RequestReservationInput{
		PCID:   f.pcID,
		UserID: userID,
		Start:  base.Add(startOffset),
		End:    base.Add(endOffset),
	})
}

func TestRequestValidationOrder(t *testing.T) {
	f := newFixture(t)
	missingPC := uuid.New()

	t.Run("interval shape checked first", func(t *testing.T) {
		// Bad interval on a missing PC still reports the interval error.
		_, err := f.engine.Request(context.Background(), commands.RequestReservationInput{
			PCID:   missingPC,
			UserID: uuid.New(),
			Start:  base.Add(2 * time.Hour),
			End:    base.Add(time.Hour),
		})
		assert.ErrorIs(t, err, commands.ErrInvalidInterval)
	})

	t.Run("start in the past", func(t *testing.T) {
		_, err := f.request(t, uuid.New(), -time.Hour, time.Hour)
		assert.ErrorIs(t, err, commands.ErrInvalidInterval)
	})

	t.Run("beyond horizon", func(t *testing.T) {
		_, err := f.request(t, uuid.New(), 31*24*time.Hour, 31*24*time.Hour+time.Hour)
		assert.ErrorIs(t, err, commands.ErrInvalidInterval)
	})

	t.Run("duration checked before resource", func(t *testing.T) {
		_, err := f.engine.Request(context.Background(), commands.RequestReservationInput{
			PCID:   missingPC,
			UserID: uuid.New(),
			Start:  base.Add(time.Hour),
			End:    base.Add(time.Hour + 30*time.Minute),
		})
		assert.ErrorIs(t, err, commands.ErrInvalidDuration)
	})

	t.Run("missing pc", func(t *testing.T) {
		_, err := f.engine.Request(context.Background(), commands.RequestReservationInput{
			PCID:   missingPC,
			UserID: uuid.New(),
			Start:  base.Add(time.Hour),
			End:    base.Add(2 * time.Hour),
		})
		assert.ErrorIs(t, err, commands.ErrResourceUnavailable)
	})

	t.Run("disabled pc", func(t *testing.T) {
		disabled := f.store.addPC(pc.StatusDisabled, 800)
		_, err := f.engine.Request(context.Background(), commands.RequestReservationInput{
			PCID:   disabled,
			UserID: uuid.New(),
			Start:  base.Add(time.Hour),
			End:    base.Add(2 * time.Hour),
		})
		assert.ErrorIs(t, err, commands.ErrResourceUnavailable)
	})

	t.Run("conflict checked last", func(t *testing.T) {
		_, err := f.request(t, uuid.New(), time.Hour, 3*time.Hour)
		require.NoError(t, err)

		_, err = f.request(t, uuid.New(), 2*time.Hour, 4*time.Hour)
		assert.ErrorIs(t, err, commands.ErrConflictingReservation)

		var conflictErr *commands.ConflictError
		require.ErrorAs(t, err, &conflictErr)

		want := []reservation.Interval{{Start: base.Add(time.Hour), End: base.Add(3 * time.Hour)}}
		assert.Empty(t, cmp.Diff(want, conflictErr.Conflicts))
	})
}

func TestRequestBoundaryDoesNotConflict(t *testing.T) {
	f := newFixture(t)

	first, err := f.request(t, uuid.New(), time.Hour, 3*time.Hour)
	require.NoError(t, err)

	// [13:00,15:00) after [11:00,13:00): touching endpoints are both kept.
	second, err := f.request(t, uuid.New(), 3*time.Hour, 5*time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, f.store.activeCount(f.pcID))
}

func TestRequestRace(t *testing.T) {
	f := newFixture(t)
	const n = 16

	var wg sync.WaitGroup
	errCh := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.request(t, uuid.New(), time.Hour, 3*time.Hour)
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	var successes, conflicts int
	for err := range errCh {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, commands.ErrConflictingReservation):
			conflicts++
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, conflicts)
	assert.Equal(t, 1, f.store.activeCount(f.pcID))
}

func TestRequestCoveringNowMarksReserved(t *testing.T) {
	f := newFixture(t)

	_, err := f.request(t, uuid.New(), 0, 2*time.Hour)
	require.NoError(t, err)

	assert.Equal(t, pc.StatusReserved, f.store.pcStatus(f.pcID))
	assert.Contains(t, f.cache.marked, f.pcID)
}

func TestCancel(t *testing.T) {
	owner := uuid.New()

	t.Run("owner cancels before start", func(t *testing.T) {
		f := newFixture(t)
		id, err := f.request(t, owner, 2*time.Hour, 4*time.Hour)
		require.NoError(t, err)

		require.NoError(t, f.engine.Cancel(context.Background(), id, owner, user.RoleUser))
		assert.Equal(t, reservation.StatusCancelled, f.store.resStatus(id))

		// The slot is free again.
		_, err = f.request(t, uuid.New(), 2*time.Hour, 4*time.Hour)
		assert.NoError(t, err)
	})

	t.Run("admin cancels on behalf of owner", func(t *testing.T) {
		f := newFixture(t)
		id, err := f.request(t, owner, 2*time.Hour, 4*time.Hour)
		require.NoError(t, err)

		err = f.engine.Cancel(context.Background(), id, uuid.New(), user.RoleAdmin)
		assert.NoError(t, err)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		f := newFixture(t)
		id, err := f.request(t, owner, 2*time.Hour, 4*time.Hour)
		require.NoError(t, err)

		err = f.engine.Cancel(context.Background(), id, uuid.New(), user.RoleUser)
		assert.ErrorIs(t, err, commands.ErrNotReservationOwner)
		assert.Equal(t, reservation.StatusActive, f.store.resStatus(id))
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)
		err := f.engine.Cancel(context.Background(), uuid.New(), owner, user.RoleUser)
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("already started", func(t *testing.T) {
		f := newFixture(t)
		id, err := f.request(t, owner, time.Hour, 3*time.Hour)
		require.NoError(t, err)

		f.clock.Set(base.Add(90 * time.Minute))
		err = f.engine.Cancel(context.Background(), id, owner, user.RoleUser)
		assert.ErrorIs(t, err, commands.ErrAlreadyFinalized)
	})

	t.Run("cancel twice", func(t *testing.T) {
		f := newFixture(t)
		id, err := f.request(t, owner, 2*time.Hour, 4*time.Hour)
		require.NoError(t, err)

		require.NoError(t, f.engine.Cancel(context.Background(), id, owner, user.RoleUser))
		err = f.engine.Cancel(context.Background(), id, owner, user.RoleUser)
		assert.ErrorIs(t, err, commands.ErrAlreadyFinalized)
	})
}

func TestSweepExpired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	expired1, err := f.request(t, uuid.New(), time.Hour, 2*time.Hour)
	require.NoError(t, err)
	expired2, err := f.request(t, uuid.New(), 2*time.Hour, 3*time.Hour)
	require.NoError(t, err)
	running, err := f.request(t, uuid.New(), 3*time.Hour, 5*time.Hour)
	require.NoError(t, err)

	f.clock.Set(base.Add(3*time.Hour + 30*time.Minute))

	count, err := f.engine.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, reservation.StatusCompleted, f.store.resStatus(expired1))
	assert.Equal(t, reservation.StatusCompleted, f.store.resStatus(expired2))
	assert.Equal(t, reservation.StatusActive, f.store.resStatus(running))

	// A reservation still covers now, so the hint stays reserved.
	assert.Equal(t, pc.StatusReserved, f.store.pcStatus(f.pcID))

	t.Run("sweep is idempotent", func(t *testing.T) {
		count, err := f.engine.SweepExpired(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("completed slots can be rebooked", func(t *testing.T) {
		f.clock.Set(base.Add(4 * time.Hour))
		_, err := f.request(t, uuid.New(), 5*time.Hour, 6*time.Hour)
		assert.NoError(t, err)
	})
}

func TestBookingScenario(t *testing.T) {
	f := newFixture(t)
	userA := uuid.New()
	userB := uuid.New()

	// A books 14:00-16:00.
	idA, err := f.request(t, userA, 4*time.Hour, 6*time.Hour)
	require.NoError(t, err)

	// B tries the same window and loses with A's interval in the details.
	_, err = f.request(t, userB, 4*time.Hour, 6*time.Hour)
	require.ErrorIs(t, err, commands.ErrConflictingReservation)

	var conflictErr *commands.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)
	assert.True(t, conflictErr.Conflicts[0].Start.Equal(base.Add(4*time.Hour)))

	// B retries right after A's slot and succeeds.
	idB, err := f.request(t, userB, 6*time.Hour, 8*time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, idA, idB)

	// A cancels; the freed window is bookable again.
	require.NoError(t, f.engine.Cancel(context.Background(), idA, userA, user.RoleUser))
	_, err = f.request(t, uuid.New(), 4*time.Hour, 6*time.Hour)
	assert.NoError(t, err)

	assert.Equal(t, 2, f.store.activeCount(f.pcID))
}
