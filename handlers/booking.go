package handlers

import (
	"errors"
	"net/http"

	"medibook/models"
	"medibook/services/booking"
	"medibook/upstream"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the public booking form and the admin booking dialog.
type BookingHandler struct {
	Service  booking.SessionService
	Doctors  upstream.DoctorSource
	Policies upstream.PolicySource
	Logger   *zap.Logger
}

func NewBookingHandler(service booking.SessionService, doctors upstream.DoctorSource, policies upstream.PolicySource, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Doctors: doctors, Policies: policies, Logger: logger}
}

// ListDoctors returns the doctors selectable on the booking form.
func (h *BookingHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Doctors.ListDoctors(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "Unable to load doctors. Please try again later.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// GetPolicies returns the published privacy-policy sections for the public
// site.
func (h *BookingHandler) GetPolicies(c *gin.Context) {
	sections, err := h.Policies.ListPolicies(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "Unable to load policies. Please try again later.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"policies": sections})
}

// StartSession opens a new booking session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		Patient models.PatientDetails `json:"patient"`
	}
	// The body is optional; prefill is a convenience.
	_ = c.ShouldBindJSON(&input)

	session, err := h.Service.StartSession(c.Request.Context(), input.Patient)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to start booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": session.SessionID, "session": session})
}

// GetSession returns the current session state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateSelection sets the doctor/date/type triple and recomputes
// availability. A stale computation is discarded silently: the response
// carries whatever the session currently holds.
func (h *BookingHandler) UpdateSelection(c *gin.Context) {
	var sel models.BookingSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid selection payload", err.Error())
		return
	}

	session, err := h.Service.UpdateSelection(c.Request.Context(), c.Param("sessionID"), sel)
	if err != nil && !errors.Is(err, booking.ErrStaleResponse) {
		switch {
		case errors.Is(err, booking.ErrInvalidSelection):
			utils.JSONError(c, http.StatusBadRequest, "Invalid selection", err.Error())
		case errors.Is(err, booking.ErrSessionNotFound):
			h.sessionError(c, err)
		case errors.Is(err, upstream.ErrNetwork):
			h.upstreamError(c, "Unable to fetch slots. Please try again later.", err)
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to compute availability", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session, "availability": session.Availability})
}

// SelectTime records the chosen interval.
func (h *BookingHandler) SelectTime(c *gin.Context) {
	var input struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid time payload", err.Error())
		return
	}

	session, err := h.Service.SelectTime(c.Request.Context(), c.Param("sessionID"), input.Time)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			h.sessionError(c, err)
		case errors.Is(err, models.ErrInvalidTimeFormat):
			utils.JSONError(c, http.StatusBadRequest, "Invalid time", err.Error())
		default:
			utils.JSONError(c, http.StatusConflict, "Time cannot be selected", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "selected": session.SelectedTime})
}

// Confirm creates the appointment upstream and returns the chained payment
// order. Double submits hit the in-flight guard and get a conflict.
func (h *BookingHandler) Confirm(c *gin.Context) {
	var input struct {
		Patient models.PatientDetails `json:"patient"`
	}
	_ = c.ShouldBindJSON(&input)

	session, err := h.Service.ConfirmBooking(c.Request.Context(), c.Param("sessionID"), input.Patient)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			h.sessionError(c, err)
		case errors.Is(err, booking.ErrNoTimeSelected):
			utils.JSONError(c, http.StatusBadRequest, "No time selected", err.Error())
		case errors.Is(err, booking.ErrSubmissionInFlight):
			utils.JSONError(c, http.StatusConflict, "Submission already in progress", err.Error())
		case errors.Is(err, upstream.ErrNetwork):
			h.upstreamError(c, "Unable to reach the booking service. Please try again.", err)
		default:
			utils.JSONError(c, http.StatusBadGateway, "Booking failed", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":       session,
		"appointmentId": session.AppointmentID,
		"order":         session.Order,
	})
}

// Cancel drops the session.
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to cancel session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session cancelled"})
}

// VerifyPayment relays the gateway callback upstream.
func (h *BookingHandler) VerifyPayment(c *gin.Context) {
	var v models.PaymentVerification
	if err := c.ShouldBindJSON(&v); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid verification payload", err.Error())
		return
	}
	if err := h.Service.VerifyPayment(c.Request.Context(), v); err != nil {
		if errors.Is(err, upstream.ErrNetwork) {
			h.upstreamError(c, "Unable to verify payment. Please contact support.", err)
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "Payment verification failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment verified"})
}

// GetAvailability is the stateless availability lookup for the admin booking
// dialog.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	sel := models.BookingSelection{
		DoctorID: c.Query("doctorid"),
		Date:     c.Query("date"),
		SlotType: c.DefaultQuery("slottype", models.SlotTypeOffline),
	}

	result, err := h.Service.ComputeAvailability(c.Request.Context(), sel)
	if err != nil {
		if errors.Is(err, upstream.ErrNetwork) {
			h.upstreamError(c, "Unable to fetch slots. Please try again later.", err)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": result})
}

func (h *BookingHandler) sessionError(c *gin.Context, err error) {
	if errors.Is(err, booking.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Booking session not found or expired", err.Error())
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "Session lookup failed", err.Error())
}

func (h *BookingHandler) upstreamError(c *gin.Context, message string, err error) {
	h.Logger.Error("upstream call failed", zap.Error(err))
	utils.JSONError(c, http.StatusBadGateway, message, "The clinic service is unreachable; please retry.")
}
