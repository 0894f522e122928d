package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/barbermx/appointment-api/internal/audit"
	"github.com/barbermx/appointment-api/internal/booking"
	"github.com/barbermx/appointment-api/internal/config"
	"github.com/barbermx/appointment-api/internal/handlers"
	infraRepo "github.com/barbermx/appointment-api/internal/infra/repository"
	"github.com/barbermx/appointment-api/internal/middleware"
	"github.com/barbermx/appointment-api/internal/models"
	"github.com/barbermx/appointment-api/internal/payments"
	"github.com/barbermx/appointment-api/internal/storage"
	ucAppointment "github.com/barbermx/appointment-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	bookingStore := booking.NewStore(rdb)

	gateway, err := payments.NewGateway(cfg.MPAccessToken, cfg.PublicBaseURL)
	if err != nil {
		// sem token a API sobe; só o checkout online fica indisponível
		log.Println("mercado pago disabled:", err)
		gateway = nil
	}

	avatarStore, err := storage.NewAvatarStore(cfg)
	if err != nil {
		log.Println("avatar storage disabled:", err)
		avatarStore = nil
	}

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	markPaidUC := ucAppointment.NewMarkPaid(
		appointmentRepo,
		auditDispatcher,
	)

	applyProviderPaymentUC := ucAppointment.NewApplyProviderPayment(
		appointmentRepo,
		auditDispatcher,
	)

	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		cfg.Timezone,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
		cfg.Timezone,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, rdb)
	meHandler := handlers.NewMeHandler(db, avatarStore)

	serviceHandler := handlers.NewServiceHandler(db)
	barberHandler := handlers.NewBarberHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC, cfg.Timezone)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		appointmentRepo,
		confirmAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		markPaidUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	bookingHandler := handlers.NewBookingHandler(bookingStore, createAppointmentUC)
	paymentHandler := handlers.NewPaymentHandler(appointmentRepo, gateway, applyProviderPaymentUC)

	statsHandler := handlers.NewStatsHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", serviceHandler.ListActive)
			publicAPI.GET("/barbers", barberHandler.ListActive)
			publicAPI.GET("/availability", availabilityHandler.Get)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 💳 WEBHOOK (chamado pelo provedor, sem auth)
		// ------------------------------
		api.POST("/payments/webhook", paymentHandler.Webhook)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, rdb))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.PUT("/me/avatar", meHandler.UploadAvatar)

			// ------------------------------
			// CLIENTE — fluxo de reserva
			// ------------------------------
			secured.POST("/me/booking", bookingHandler.Start)
			secured.GET("/me/booking/:session_id", bookingHandler.Get)
			secured.PATCH("/me/booking/:session_id/service", bookingHandler.SelectService)
			secured.PATCH("/me/booking/:session_id/barber", bookingHandler.SelectBarber)
			secured.PATCH("/me/booking/:session_id/datetime", bookingHandler.SelectDatetime)
			secured.PATCH("/me/booking/:session_id/payment", bookingHandler.SelectPayment)
			secured.POST("/me/booking/:session_id/next", bookingHandler.Next)
			secured.POST("/me/booking/:session_id/back", bookingHandler.Back)
			secured.POST("/me/booking/:session_id/submit", bookingHandler.Submit)
			secured.DELETE("/me/booking/:session_id", bookingHandler.Cancel)

			// ------------------------------
			// CLIENTE — agendamentos
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.CancelAsClient)

			// ------------------------------
			// CLIENTE — checkout online
			// ------------------------------
			secured.POST("/payments/preference", paymentHandler.CreatePreference)

			// ------------------------------
			// BARBEIRO
			// ------------------------------
			barber := secured.Group("/barber")
			barber.Use(middleware.RequireRole(models.RoleBarber, models.RoleAdmin))
			{
				barber.GET("/schedule", scheduleHandler.Get)
				barber.PUT("/schedule", scheduleHandler.Update)

				barber.GET("/appointments", appointmentHandler.ListByDate)
				barber.GET("/appointments/month", appointmentHandler.ListByMonth)
				barber.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
				barber.PATCH("/appointments/:id/cancel", appointmentHandler.CancelAsBarber)
				barber.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
				barber.PATCH("/appointments/:id/pay", appointmentHandler.MarkPaid)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/services", serviceHandler.Create)
				admin.PUT("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Deactivate)

				admin.POST("/barbers", barberHandler.Create)
				admin.PATCH("/barbers/:id/active", barberHandler.SetActive)
				admin.PATCH("/profiles/:id/role", barberHandler.PromoteRole)

				admin.GET("/barbers/:id/stats", statsHandler.BarberStats)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
