package booking

import (
	"context"
	"time"

	"medibook/models"
	"medibook/services/availability"
	"medibook/upstream"
	"medibook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultSessionService is the production booking session service. Sessions
// live in Redis with a TTL; the upstream clinic API owns all records.
type DefaultSessionService struct {
	Slots        upstream.SlotSource
	Appointments upstream.AppointmentSource
	Payments     upstream.PaymentAPI
	Cache        *redis.Client
	// Locks holds the submit locks. Falls back to Cache when unset.
	Locks      *redis.Client
	SessionTTL time.Duration

	// Now is overridable so the "today" cutoff can be pinned in tests.
	Now func() time.Time
}

func (s *DefaultSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultSessionService) locks() *redis.Client {
	if s.Locks != nil {
		return s.Locks
	}
	return s.Cache
}

func (s *DefaultSessionService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return 10 * time.Minute
}

// StartSession creates an idle session, optionally prefilled with patient
// contact details.
func (s *DefaultSessionService) StartSession(ctx context.Context, patient models.PatientDetails) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		State:     models.StateIdle,
		Patient:   patient,
		CreatedAt: time.Now(),
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns the current session state.
func (s *DefaultSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.loadSession(ctx, sessionID)
}

// UpdateSelection records a new doctor/date/type triple and recomputes
// availability. The two upstream fetches run in parallel and are joined
// before the engine runs. If the selection moved on while this computation
// was in flight, its result is discarded (ErrStaleResponse) and the stored
// session is returned untouched.
func (s *DefaultSessionService) UpdateSelection(ctx context.Context, sessionID string, sel models.BookingSelection) (*models.BookingSession, error) {
	if sel.DoctorID == "" || sel.Date == "" ||
		(sel.SlotType != models.SlotTypeOnline && sel.SlotType != models.SlotTypeOffline) {
		return nil, ErrInvalidSelection
	}

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// A selection change invalidates whatever was on screen. Availability is
	// cleared before the fetches so a failed fetch can never leave stale data
	// behind.
	session.Selection = sel
	session.Seq++
	session.State = models.StateDoctorAndDateChosen
	session.Availability = nil
	session.SelectedTime = nil
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	seq := session.Seq

	result, err := s.ComputeAvailability(ctx, sel)
	if err != nil {
		return nil, err
	}

	// Stale-response guard: only the request matching the session's current
	// sequence may publish its result.
	current, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if current.Seq != seq {
		utils.GetLogger().Debug("discarding stale availability result",
			zap.String("sessionID", sessionID),
			zap.Int64("computedSeq", seq), zap.Int64("currentSeq", current.Seq))
		return current, ErrStaleResponse
	}

	current.Availability = &result
	current.State = models.StateAvailabilityLoaded
	if err := s.saveSession(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// ComputeAvailability fetches slots and booked appointments in parallel,
// joins them and runs the engine.
func (s *DefaultSessionService) ComputeAvailability(ctx context.Context, sel models.BookingSelection) (models.AvailabilityResult, error) {
	var (
		slots  []models.SlotDefinition
		booked []models.BookedAppointment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		slots, err = s.Slots.FetchSlots(gctx, sel.DoctorID, sel.Date)
		return err
	})
	g.Go(func() error {
		var err error
		booked, err = s.Appointments.FetchBooked(gctx, sel.DoctorID, sel.Date)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.AvailabilityResult{}, err
	}

	return availability.Compute(availability.Params{
		DoctorID: sel.DoctorID,
		Date:     sel.Date,
		SlotType: sel.SlotType,
		Slots:    slots,
		Booked:   booked,
		Now:      s.now(),
	}), nil
}

// SelectTime resolves a chosen interval against the current availability and
// derives the end time from the originating slot's step.
func (s *DefaultSessionService) SelectTime(ctx context.Context, sessionID, timeText string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Availability == nil {
		return nil, ErrInvalidSelection
	}

	selected, err := availability.ResolveSelection(*session.Availability, timeText)
	if err != nil {
		return nil, err
	}
	session.SelectedTime = selected
	session.State = models.StateTimeSelected
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmBooking creates the appointment upstream and chains the payment
// order. A Redis lock makes a second confirm for the same session fail fast
// while the first is in flight.
func (s *DefaultSessionService) ConfirmBooking(ctx context.Context, sessionID string, patient models.PatientDetails) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.SelectedTime == nil || session.State != models.StateTimeSelected {
		return nil, ErrNoTimeSelected
	}
	if patient.Name != "" {
		session.Patient = patient
	}

	lockKey := utils.SubmitLockPrefix + sessionID
	locked, err := s.locks().SetNX(ctx, lockKey, "1", utils.SubmitLockTTL).Result()
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrSubmissionInFlight
	}
	defer s.locks().Del(ctx, lockKey)

	session.State = models.StateSubmitting
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	created, err := s.Appointments.CreateAppointment(ctx, models.CreateAppointmentRequest{
		PatientName:   session.Patient.Name,
		PatientEmail:  session.Patient.Email,
		PatientMobile: session.Patient.Mobile,
		DoctorID:      session.Selection.DoctorID,
		Date:          session.Selection.Date,
		SlotID:        session.SelectedTime.SlotID,
		StartTime:     session.SelectedTime.StartTime,
		EndTime:       session.SelectedTime.EndTime,
		SlotType:      session.Selection.SlotType,
	})
	if err != nil {
		session.State = models.StateFailed
		session.FailureReason = err.Error()
		if saveErr := s.saveSession(ctx, session); saveErr != nil {
			utils.GetLogger().Error("failed to record booking failure",
				zap.String("sessionID", sessionID), zap.Error(saveErr))
		}
		return nil, err
	}

	session.State = models.StateConfirmed
	session.AppointmentID = created.Appointment.ID
	session.Order = created.Order
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelSession drops the session.
func (s *DefaultSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.deleteSession(ctx, sessionID)
}

// VerifyPayment relays the gateway callback upstream.
func (s *DefaultSessionService) VerifyPayment(ctx context.Context, v models.PaymentVerification) error {
	return s.Payments.VerifyPayment(ctx, v)
}
