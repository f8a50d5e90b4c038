package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ShasthoSeba/telemed-scheduler/internal/config"
	domain "github.com/ShasthoSeba/telemed-scheduler/internal/domain/schedule"
	"github.com/ShasthoSeba/telemed-scheduler/internal/httperr"
	"github.com/ShasthoSeba/telemed-scheduler/internal/httpresp"
	"github.com/ShasthoSeba/telemed-scheduler/internal/middleware"
	ucSchedule "github.com/ShasthoSeba/telemed-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type SlotHandler struct {
	createSlots      *ucSchedule.CreateSlots
	deleteSlot       *ucSchedule.DeleteSlot
	listDoctorSlots  *ucSchedule.ListDoctorSlots
	listAvailability *ucSchedule.ListAvailability
	cfg              *config.Config
}

func NewSlotHandler(
	createSlots *ucSchedule.CreateSlots,
	deleteSlot *ucSchedule.DeleteSlot,
	listDoctorSlots *ucSchedule.ListDoctorSlots,
	listAvailability *ucSchedule.ListAvailability,
	cfg *config.Config,
) *SlotHandler {
	return &SlotHandler{
		createSlots:      createSlots,
		deleteSlot:       deleteSlot,
		listDoctorSlots:  listDoctorSlots,
		listAvailability: listAvailability,
		cfg:              cfg,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSlotsRequest struct {
	FromDate string `json:"from_date" binding:"required"`
	ToDate   string `json:"to_date" binding:"required"`

	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`

	ConsultationFee     float64 `json:"consultation_fee" binding:"required,gt=0"`
	AppointmentDuration int     `json:"appointment_duration" binding:"required,gt=0"`
	MaxAppointments     int     `json:"max_appointments" binding:"required,gt=0"`

	AllowSameDayBooking bool `json:"allow_same_day_booking"`
}

// ======================================================
// CREATE (doctor)
// ======================================================

func (h *SlotHandler) Create(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid slot data.")
		return
	}

	fromDate, err := parseDate(h.cfg.Timezone, req.FromDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_from_date", "From date must be YYYY-MM-DD.")
		return
	}
	toDate, err := parseDate(h.cfg.Timezone, req.ToDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_to_date", "To date must be YYYY-MM-DD.")
		return
	}

	slots, err := h.createSlots.Execute(c.Request.Context(), domain.CreateSlotsInput{
		DoctorID:            doctorID,
		FromDate:            fromDate,
		ToDate:              toDate,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		ConsultationFee:     req.ConsultationFee,
		AppointmentDuration: req.AppointmentDuration,
		MaxAppointments:     req.MaxAppointments,
		AllowSameDayBooking: req.AllowSameDayBooking,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "create slots")
		return
	}

	httpresp.Created(c, gin.H{
		"created": len(slots),
		"slots":   slots,
	})
}

// ======================================================
// LIST (doctor's own)
// ======================================================

func (h *SlotHandler) ListMine(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(uint)

	slots, err := h.listDoctorSlots.Execute(c.Request.Context(), doctorID)
	if err != nil {
		httperr.WriteBusiness(c, err, "list slots")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// LIST AVAILABILITY (patient view of a doctor)
// ======================================================

func (h *SlotHandler) ListAvailability(c *gin.Context) {
	doctorID, err := strconv.ParseUint(c.Param("doctorId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Doctor id must be numeric.")
		return
	}

	availability, err := h.listAvailability.Execute(c.Request.Context(), uint(doctorID))
	if err != nil {
		httperr.WriteBusiness(c, err, "list availability")
		return
	}

	httpresp.List(c, availability)
}

// ======================================================
// DELETE (doctor)
// ======================================================

func (h *SlotHandler) Delete(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(uint)

	slotID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_id", "Slot id must be numeric.")
		return
	}

	if err := h.deleteSlot.Execute(c.Request.Context(), doctorID, uint(slotID)); err != nil {
		httperr.WriteBusiness(c, err, "delete slot")
		return
	}

	httpresp.OK(c, gin.H{"deleted": slotID})
}
