package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/SalonVioleta/nail-scheduler/internal/audit"
	"github.com/SalonVioleta/nail-scheduler/internal/config"
	"github.com/SalonVioleta/nail-scheduler/internal/handlers"
	infraRepo "github.com/SalonVioleta/nail-scheduler/internal/infra/repository"
	"github.com/SalonVioleta/nail-scheduler/internal/middleware"
	"github.com/SalonVioleta/nail-scheduler/internal/storage"
	ucAppointment "github.com/SalonVioleta/nail-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var uploader storage.Uploader
	if cfg.S3Bucket != "" {
		uploader = storage.NewS3Uploader(cfg)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher, cfg.SalonTZ)
	updateStatusUC := ucAppointment.NewUpdateStatus(appointmentRepo, auditDispatcher, cfg.SalonTZ)
	updateNotesUC := ucAppointment.NewUpdateAdminNotes(appointmentRepo, auditDispatcher)
	listUC := ucAppointment.NewListAppointments(appointmentRepo, cfg.SalonTZ)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)
	statsUC := ucAppointment.NewComputeStats(appointmentRepo, cfg.SalonTZ)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		cancelUC,
		listUC,
		availabilityUC,
		uploader,
	)

	staffHandler := handlers.NewStaffHandler(listUC, updateStatusUC, updateNotesUC)
	adminHandler := handlers.NewAdminHandler(db, statsUC, auditDispatcher)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit(rdb, 20, time.Minute))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}
		api.GET("/auth/me", middleware.AuthMiddleware(cfg), authHandler.Me)

		// ------------------------------
		// APPOINTMENTS (authenticated user)
		// ------------------------------
		appointments := api.Group("/appointments")
		appointments.Use(middleware.AuthMiddleware(cfg))
		{
			appointments.GET("", appointmentHandler.List)
			appointments.POST("", appointmentHandler.Create)
			appointments.GET("/availability", appointmentHandler.Availability)
			appointments.GET("/:id", appointmentHandler.Get)
			appointments.PUT("/:id/cancel", appointmentHandler.Cancel)
		}

		// ------------------------------
		// ATTENDANT (staff)
		// ------------------------------
		attendant := api.Group("/attendant")
		attendant.Use(middleware.AuthMiddleware(cfg), middleware.RequireStaff())
		{
			attendant.GET("/appointments", staffHandler.ListAll)
			attendant.GET("/appointments/today", staffHandler.ListToday)
			attendant.PUT("/appointments/:id/status", staffHandler.UpdateStatus)
			attendant.PUT("/appointments/:id/notes", staffHandler.UpdateNotes)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin())
		{
			admin.GET("/appointments", staffHandler.ListAll)
			admin.PUT("/appointments/:id/status", staffHandler.UpdateStatus)
			admin.PUT("/appointments/:id/notes", staffHandler.UpdateNotes)

			admin.GET("/users", adminHandler.ListUsers)
			admin.POST("/users", adminHandler.CreateUser)
			admin.PUT("/users/:id", adminHandler.UpdateUser)

			admin.GET("/stats", adminHandler.Stats)
		}
	}
}
