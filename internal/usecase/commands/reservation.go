package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"netcafe-booking/internal/domain/pc"
	"netcafe-booking/internal/domain/reservation"
	"netcafe-booking/internal/domain/user"
	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/pkg/clock"
	"netcafe-booking/internal/pkg/errs"
	"netcafe-booking/internal/pkg/lockmap"
	"netcafe-booking/internal/usecase/shared"
)

// StatusCache publishes the advisory "reserved right now" hint. Failures are
// logged and swallowed; the hint is never authoritative.
type StatusCache interface {
	MarkReserved(ctx context.Context, pcID uuid.UUID, until time.Time) error
	Clear(ctx context.Context, pcID uuid.UUID) error
}

type RequestReservationInput struct {
	PCID   uuid.UUID
	UserID uuid.UUID
	Start  time.Time
	End    time.Time
}

// ReservationCommands is the admission engine. All writes to the reservation
// ledger for a PC happen while holding that PC's lock, so the
// check-then-insert sequence is atomic per PC.
type ReservationCommands struct {
	uow       shared.UnitOfWork
	reader    shared.ReservationReader
	pcs       shared.PCReader
	schedules *reservation.ScheduleMap
	locks     *lockmap.LockMap
	cache     StatusCache
	policy    reservation.Policy
	clock     clock.Clock
	logger    *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reader shared.ReservationReader,
	pcs shared.PCReader,
	schedules *reservation.ScheduleMap,
	locks *lockmap.LockMap,
	cache StatusCache,
	policy reservation.Policy,
	clk clock.Clock,
	logger *slog.Logger,
) *ReservationCommands {
	return &ReservationCommands{
		uow:       uow,
		reader:    reader,
		pcs:       pcs,
		schedules: schedules,
		locks:     locks,
		cache:     cache,
		policy:    policy,
		clock:     clk,
		logger:    logger,
	}
}

// Request validates and admits a reservation. Checks run in a fixed order:
// interval shape, duration, resource availability, then conflicts.
func (c *ReservationCommands) Request(ctx context.Context, in RequestReservationInput) (uuid.UUID, error) {
	now := c.clock.Now()

	slot, err := reservation.NewTimeSlot(in.Start, in.End)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInterval)
	}
	if err := c.policy.ValidateInterval(slot, now); err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInterval)
	}
	if err := c.policy.ValidateDuration(slot); err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidDuration)
	}

	snap, err := c.pcs.Snapshot(ctx, in.PCID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, ErrResourceUnavailable)
		}
		return uuid.Nil, errs.Wrap(err, "failed to load pc")
	}
	if snap.Status == pc.StatusDisabled {
		return uuid.Nil, errs.Mark(errs.New("pc is disabled"), ErrResourceUnavailable)
	}

	release := c.locks.Acquire(in.PCID)
	defer release()

	sched, err := c.warmSchedule(ctx, in.PCID)
	if err != nil {
		return uuid.Nil, err
	}

	if conflicts := sched.Overlapping(slot.Interval()); len(conflicts) > 0 {
		intervals := make([]reservation.Interval, len(conflicts))
		for i, e := range conflicts {
			intervals[i] = e.Interval
		}
		return uuid.Nil, newConflictError(intervals)
	}

	res, err := reservation.NewReservation(in.PCID, in.UserID, slot, now)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to build reservation")
	}

	coversNow := slot.Interval().Contains(now)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		if coversNow {
			return tx.PCs().SetStatus(ctx, in.PCID, pc.StatusReserved, now)
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindExclusion) {
			// The exclusion constraint fired after the index said the slot
			// was free. The index is stale; force a rewarm and alarm.
			sched.Reset()
			c.logger.Error("conflict index out of sync with ledger",
				"pc_id", in.PCID, "interval", slot.Interval().String())
			return uuid.Nil, errs.Mark(err, ErrScheduleCorrupted)
		}
		if infra.IsKind(err, infra.KindForeignKey) {
			return uuid.Nil, errs.Mark(err, ErrResourceUnavailable)
		}
		return uuid.Nil, errs.Wrap(err, "failed to commit reservation")
	}

	sched.Insert(reservation.Entry{ID: res.ID(), Interval: slot.Interval()})

	if coversNow {
		if cacheErr := c.cache.MarkReserved(ctx, in.PCID, slot.End()); cacheErr != nil {
			c.logger.Warn("failed to update status cache", "pc_id", in.PCID, "error", cacheErr)
		}
	}
	return res.ID(), nil
}

// Cancel voids an active reservation before it starts. Only the owner or an
// admin may cancel.
func (c *ReservationCommands) Cancel(ctx context.Context, reservationID, requesterID uuid.UUID, role user.Role) error {
	res, err := c.reader.Get(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrReservationNotFound)
		}
		return errs.Wrap(err, "failed to load reservation")
	}

	if !res.IsOwnedBy(requesterID) && role != user.RoleAdmin {
		return ErrNotReservationOwner
	}

	now := c.clock.Now()
	if err := res.CanCancelAt(now); err != nil {
		return errs.Mark(err, ErrAlreadyFinalized)
	}

	release := c.locks.Acquire(res.PCID())
	defer release()

	wasCovering := res.Slot().Interval().Contains(now)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Guarded update: only an active row transitions, so a concurrent
		// cancel or sweep loses cleanly.
		if err := tx.Reservations().SetStatus(ctx, reservationID, reservation.StatusCancelled, now); err != nil {
			return err
		}
		if wasCovering {
			covered, err := tx.Reservations().HasActiveCovering(ctx, res.PCID(), now)
			if err != nil {
				return err
			}
			if !covered {
				return tx.PCs().SetStatus(ctx, res.PCID(), pc.StatusAvailable, now)
			}
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrAlreadyFinalized)
		}
		return errs.Wrap(err, "failed to cancel reservation")
	}

	c.schedules.Get(res.PCID()).Remove(reservationID)

	if wasCovering {
		if cacheErr := c.cache.Clear(ctx, res.PCID()); cacheErr != nil {
			c.logger.Warn("failed to clear status cache", "pc_id", res.PCID(), "error", cacheErr)
		}
	}
	return nil
}

// SweepExpired completes every active reservation whose end time has passed
// and refreshes the touched PCs' status hints. Running it twice is harmless.
func (c *ReservationCommands) SweepExpired(ctx context.Context) (int, error) {
	now := c.clock.Now()

	var expired []shared.ExpiredReservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		expired, err = tx.Reservations().CompleteExpired(ctx, now)
		if err != nil {
			return err
		}

		touched := make(map[uuid.UUID]struct{}, len(expired))
		for _, e := range expired {
			touched[e.PCID] = struct{}{}
		}
		for pcID := range touched {
			covered, err := tx.Reservations().HasActiveCovering(ctx, pcID, now)
			if err != nil {
				return err
			}
			status := pc.StatusAvailable
			if covered {
				status = pc.StatusReserved
			}
			if err := tx.PCs().SetStatus(ctx, pcID, status, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(err, "failed to sweep expired reservations")
	}

	for _, sched := range c.schedules.Warmed() {
		sched.PruneEnded(now)
	}
	for _, e := range expired {
		if cacheErr := c.cache.Clear(ctx, e.PCID); cacheErr != nil {
			c.logger.Warn("failed to clear status cache", "pc_id", e.PCID, "error", cacheErr)
		}
	}

	if len(expired) > 0 {
		c.logger.Info("expiry sweep completed reservations", "count", len(expired))
	}
	return len(expired), nil
}

func (c *ReservationCommands) warmSchedule(ctx context.Context, pcID uuid.UUID) (*reservation.Schedule, error) {
	sched := c.schedules.Get(pcID)
	if !sched.IsWarm() {
		entries, err := c.reader.ActiveEntries(ctx, pcID)
		if err != nil {
			return nil, errs.Wrap(err, "failed to warm conflict index")
		}
		sched.Warm(entries)
	}
	return sched, nil
}
