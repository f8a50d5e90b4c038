package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ShasthoSeba/telemed-scheduler/internal/audit"
	"github.com/ShasthoSeba/telemed-scheduler/internal/clock"
	"github.com/ShasthoSeba/telemed-scheduler/internal/config"
	"github.com/ShasthoSeba/telemed-scheduler/internal/handlers"
	infraRepo "github.com/ShasthoSeba/telemed-scheduler/internal/infra/repository"
	"github.com/ShasthoSeba/telemed-scheduler/internal/middleware"
	"github.com/ShasthoSeba/telemed-scheduler/internal/payment"
	"github.com/ShasthoSeba/telemed-scheduler/internal/timezone"
	ucSchedule "github.com/ShasthoSeba/telemed-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) *ucSchedule.ExpireUnpaid {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db, timezone.Location(cfg.Timezone))
	clk := clock.NewSystem(cfg.Timezone)
	gateway := payment.NewMockGateway()

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createSlotsUC := ucSchedule.NewCreateSlots(scheduleRepo, clk, auditDispatcher)
	deleteSlotUC := ucSchedule.NewDeleteSlot(scheduleRepo, auditDispatcher)
	listDoctorSlotsUC := ucSchedule.NewListDoctorSlots(scheduleRepo, clk)
	listAvailabilityUC := ucSchedule.NewListAvailability(scheduleRepo, clk)

	bookUC := ucSchedule.NewBookAppointment(scheduleRepo, clk, auditDispatcher)
	cancelUC := ucSchedule.NewCancelAppointment(scheduleRepo, clk, auditDispatcher)
	completeUC := ucSchedule.NewCompleteAppointment(scheduleRepo, clk, auditDispatcher)
	listAppointmentsUC := ucSchedule.NewListAppointments(scheduleRepo)
	joinWindowUC := ucSchedule.NewGetJoinWindow(scheduleRepo, clk)

	completePaymentUC := ucSchedule.NewCompletePayment(scheduleRepo, gateway, clk, auditDispatcher)
	expireUnpaidUC := ucSchedule.NewExpireUnpaid(scheduleRepo, clk, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	slotHandler := handlers.NewSlotHandler(
		createSlotsUC,
		deleteSlotUC,
		listDoctorSlotsUC,
		listAvailabilityUC,
		cfg,
	)
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		completeUC,
		listAppointmentsUC,
		joinWindowUC,
	)
	paymentHandler := handlers.NewPaymentHandler(completePaymentUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/doctors/:doctorId/availability", slotHandler.ListAvailability)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// SLOTS (doctor)
			// ------------------------------
			doctor := secured.Group("/me")
			doctor.Use(middleware.RequireRole(middleware.RoleDoctor))
			{
				doctor.POST("/slots", slotHandler.Create)
				doctor.GET("/slots", slotHandler.ListMine)
				doctor.DELETE("/slots/:id", slotHandler.Delete)

				doctor.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			}

			// ------------------------------
			// BOOKING / PAYMENT (patient)
			// ------------------------------
			patient := secured.Group("/")
			patient.Use(middleware.RequireRole(middleware.RolePatient))
			{
				patient.POST("/appointments", appointmentHandler.Book)
				patient.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
				patient.POST("/appointments/:id/pay", paymentHandler.Pay)
			}

			// ------------------------------
			// SHARED
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.ListMine)
			secured.GET("/appointments/:id/join-window", appointmentHandler.JoinWindow)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return expireUnpaidUC
}
