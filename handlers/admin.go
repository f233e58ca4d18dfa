package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"medibook/models"
	"medibook/services/admin"
	"medibook/services/slotadmin"
	"medibook/upstream"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the back-office: sign-in, slot editing, directory
// listings and the privacy-policy editor.
type AdminHandler struct {
	Admin     admin.AdminService
	Slots     slotadmin.Service
	Directory upstream.AdminDirectory
	Logger    *zap.Logger
}

func NewAdminHandler(adminSvc admin.AdminService, slots slotadmin.Service, directory upstream.AdminDirectory, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Admin: adminSvc, Slots: slots, Directory: directory, Logger: logger}
}

// Login exchanges credentials for a bearer token.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required", err.Error())
		return
	}

	token, session, err := h.Admin.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "credentials rejected")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Sign-in failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "session": session})
}

// Logout revokes the caller's session.
func (h *AdminHandler) Logout(c *gin.Context) {
	session := currentAdminSession(c)
	if session == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Not signed in", "no admin session on request")
		return
	}
	if err := h.Admin.SignOut(c.Request.Context(), session.SessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Sign-out failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// listQuery reads the shared pagination/sort/search query parameters. The
// sortby parameter is "field" or "field:desc".
func listQuery(c *gin.Context) models.SlotListQuery {
	pageNo, err := strconv.Atoi(c.DefaultQuery("pageno", "1"))
	if err != nil || pageNo < 1 {
		pageNo = 1
	}
	q := models.SlotListQuery{PageNo: pageNo, Search: c.Query("search")}
	if sort := c.Query("sortby"); sort != "" {
		field, dir, found := strings.Cut(sort, ":")
		if !found || dir == "" {
			dir = "asc"
		}
		q.SortBy = map[string]string{field: dir}
	}
	return q
}

// ListSlots returns the stored slot definitions rendered for the editor.
func (h *AdminHandler) ListSlots(c *gin.Context) {
	views, err := h.Slots.List(c.Request.Context(), listQuery(c))
	if err != nil {
		h.upstreamError(c, "Unable to load slots.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slotbooking": views})
}

// CreateSlot stores a new slot definition.
func (h *AdminHandler) CreateSlot(c *gin.Context) {
	var req models.SlotEditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid slot payload", err.Error())
		return
	}
	if err := h.Slots.Create(c.Request.Context(), req); err != nil {
		h.slotError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "slot created"})
}

// UpdateSlot rewrites a stored slot definition.
func (h *AdminHandler) UpdateSlot(c *gin.Context) {
	var req models.SlotEditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid slot payload", err.Error())
		return
	}
	if err := h.Slots.Update(c.Request.Context(), req); err != nil {
		h.slotError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "slot updated"})
}

// DeleteSlot removes a stored slot definition.
func (h *AdminHandler) DeleteSlot(c *gin.Context) {
	var input struct {
		ID string `json:"_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing slot id", err.Error())
		return
	}
	if err := h.Slots.Delete(c.Request.Context(), input.ID); err != nil {
		h.upstreamError(c, "Unable to delete slot.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "slot deleted"})
}

// ListDoctors returns the doctor directory for the back-office.
func (h *AdminHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.Directory.ListDoctorsAdmin(c.Request.Context(), listQuery(c))
	if err != nil {
		h.upstreamError(c, "Unable to load doctors.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doctors})
}

// ListPatients returns the patient directory for the back-office.
func (h *AdminHandler) ListPatients(c *gin.Context) {
	patients, err := h.Directory.ListPatientsAdmin(c.Request.Context(), listQuery(c))
	if err != nil {
		h.upstreamError(c, "Unable to load patients.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patient": patients})
}

// ListAppointments returns the booked appointments for the back-office.
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	appointments, err := h.Directory.ListAppointmentsAdmin(c.Request.Context(), listQuery(c))
	if err != nil {
		h.upstreamError(c, "Unable to load appointments.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// ListPayments returns the payment records for the back-office.
func (h *AdminHandler) ListPayments(c *gin.Context) {
	payments, err := h.Directory.ListPaymentsAdmin(c.Request.Context(), listQuery(c))
	if err != nil {
		h.upstreamError(c, "Unable to load payments.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// DeletePayment removes a payment record.
func (h *AdminHandler) DeletePayment(c *gin.Context) {
	var input struct {
		PaymentID string `json:"paymentid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing payment id", err.Error())
		return
	}
	if err := h.Directory.DeletePaymentAdmin(c.Request.Context(), input.PaymentID); err != nil {
		h.upstreamError(c, "Unable to delete payment.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment deleted"})
}

// GetPolicies returns the privacy-policy sections.
func (h *AdminHandler) GetPolicies(c *gin.Context) {
	sections, err := h.Admin.GetPolicies(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "Unable to load policies.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"policies": sections})
}

// EditPolicies applies one tagged editor action and returns the updated
// sections.
func (h *AdminHandler) EditPolicies(c *gin.Context) {
	var edit models.PolicyEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid policy edit", err.Error())
		return
	}
	sections, err := h.Admin.ApplyPolicyEdit(c.Request.Context(), edit)
	if err != nil {
		if errors.Is(err, upstream.ErrNetwork) {
			h.upstreamError(c, "Unable to save policies.", err)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Policy edit rejected", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"policies": sections})
}

func (h *AdminHandler) slotError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, slotadmin.ErrInvalidWindow),
		errors.Is(err, slotadmin.ErrInvalidStep),
		errors.Is(err, slotadmin.ErrInvalidBreak),
		errors.Is(err, models.ErrInvalidTimeFormat):
		utils.JSONError(c, http.StatusBadRequest, "Invalid slot definition", err.Error())
	case errors.Is(err, upstream.ErrNetwork):
		h.upstreamError(c, "Unable to save slot.", err)
	default:
		utils.JSONError(c, http.StatusBadGateway, "Slot update failed", err.Error())
	}
}

func (h *AdminHandler) upstreamError(c *gin.Context, message string, err error) {
	h.Logger.Error("upstream call failed", zap.Error(err))
	utils.JSONError(c, http.StatusBadGateway, message, "The clinic service is unreachable; please retry.")
}

// currentAdminSession reads the session the auth middleware attached.
func currentAdminSession(c *gin.Context) *models.AdminSession {
	value, ok := c.Get("adminSession")
	if !ok {
		return nil
	}
	session, ok := value.(*models.AdminSession)
	if !ok {
		return nil
	}
	return session
}
