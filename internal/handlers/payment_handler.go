package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ShasthoSeba/telemed-scheduler/internal/httperr"
	"github.com/ShasthoSeba/telemed-scheduler/internal/httpresp"
	"github.com/ShasthoSeba/telemed-scheduler/internal/middleware"
	ucSchedule "github.com/ShasthoSeba/telemed-scheduler/internal/usecase/schedule"
)

type PaymentHandler struct {
	completePayment *ucSchedule.CompletePayment
}

func NewPaymentHandler(completePayment *ucSchedule.CompletePayment) *PaymentHandler {
	return &PaymentHandler{completePayment: completePayment}
}

type PayRequest struct {
	Method string `json:"method" binding:"required,oneof=bkash nagad rocket card"`
}

// Pay charges the selected method and returns the assigned serial number
// and exact consultation time.
func (h *PaymentHandler) Pay(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be numeric.")
		return
	}

	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payment data.")
		return
	}

	result, err := h.completePayment.Execute(c.Request.Context(), ucSchedule.CompletePaymentInput{
		PatientID:     patientID,
		AppointmentID: uint(id),
		Method:        req.Method,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "complete payment")
		return
	}

	httpresp.OK(c, result)
}
