package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbexa/barbexa-api/internal/audit"
	"github.com/barbexa/barbexa-api/internal/config"
	"github.com/barbexa/barbexa-api/internal/handlers"
	infraRepo "github.com/barbexa/barbexa-api/internal/infra/repository"
	"github.com/barbexa/barbexa-api/internal/middleware"
	ucReservation "github.com/barbexa/barbexa-api/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
	)

	getReservationUC := ucReservation.NewGetReservation(reservationRepo)

	listReservationsUC := ucReservation.NewListReservations(reservationRepo)

	updateStatusUC := ucReservation.NewUpdateReservationStatus(
		reservationRepo,
		auditDispatcher,
	)

	dayAvailabilityUC := ucReservation.NewGetBarberDayAvailability(reservationRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(db)
	userHandler := handlers.NewUserHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		getReservationUC,
		listReservationsUC,
		updateStatusUC,
		dayAvailabilityUC,
	)

	// ======================================================
	// AUTH
	// ======================================================
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// ======================================================
	// CATÁLOGO (leitura pública)
	// ======================================================
	r.GET("/services", catalogHandler.ListServices)
	r.GET("/combos", catalogHandler.ListCombos)
	r.GET("/users/barbers", userHandler.ListBarbers)

	// ======================================================
	// ROTAS AUTENTICADAS
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.POST("/barbers/:barberId/services", catalogHandler.GrantBarberServices)

		// ------------------------------
		// RESERVATIONS
		// ------------------------------
		secured.POST("/reservations", reservationHandler.Create)
		secured.GET("/reservations/detail/:id", reservationHandler.Detail)
		secured.GET("/reservations/list", reservationHandler.List)
		secured.PATCH("/reservations/:id/status", reservationHandler.UpdateStatus)
		secured.GET("/reservations/barber/:barberId/availability", reservationHandler.BarberDayAvailability)

		secured.GET("/audit-logs", auditLogsHandler.List)
	}
}
