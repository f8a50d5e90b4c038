package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ShasthoSeba/telemed-scheduler/internal/httperr"
	"github.com/ShasthoSeba/telemed-scheduler/internal/httpresp"
	"github.com/ShasthoSeba/telemed-scheduler/internal/middleware"
	ucSchedule "github.com/ShasthoSeba/telemed-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book     *ucSchedule.BookAppointment
	cancel   *ucSchedule.CancelAppointment
	complete *ucSchedule.CompleteAppointment
	list     *ucSchedule.ListAppointments
	join     *ucSchedule.GetJoinWindow
}

func NewAppointmentHandler(
	book *ucSchedule.BookAppointment,
	cancel *ucSchedule.CancelAppointment,
	complete *ucSchedule.CompleteAppointment,
	list *ucSchedule.ListAppointments,
	join *ucSchedule.GetJoinWindow,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:     book,
		cancel:   cancel,
		complete: complete,
		list:     list,
		join:     join,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	SlotID   uint   `json:"slot_id" binding:"required"`
	Notes    string `json:"notes"`
	PayNow   bool   `json:"pay_now"`
}

// ======================================================
// BOOK (patient)
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucSchedule.BookAppointmentInput{
		PatientID: patientID,
		DoctorID:  req.DoctorID,
		SlotID:    req.SlotID,
		Notes:     req.Notes,
		PayNow:    req.PayNow,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "book appointment")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	var err error
	var aps any

	if role == middleware.RoleDoctor {
		aps, err = h.list.ForDoctor(c.Request.Context(), userID)
	} else {
		aps, err = h.list.ForPatient(c.Request.Context(), userID)
	}
	if err != nil {
		httperr.WriteBusiness(c, err, "list appointments")
		return
	}

	httpresp.OK(c, aps)
}

// ======================================================
// CANCEL (patient)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be numeric.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), patientID, uint(id))
	if err != nil {
		httperr.WriteBusiness(c, err, "cancel appointment")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// COMPLETE (doctor)
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be numeric.")
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), doctorID, uint(id))
	if err != nil {
		httperr.WriteBusiness(c, err, "complete appointment")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// JOIN WINDOW
// ======================================================

func (h *AppointmentHandler) JoinWindow(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be numeric.")
		return
	}

	window, err := h.join.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		httperr.WriteBusiness(c, err, "check join window")
		return
	}

	httpresp.OK(c, window)
}
