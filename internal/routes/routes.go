package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gulfwash/carwash-scheduler/internal/config"
	"github.com/gulfwash/carwash-scheduler/internal/handlers"
	infraRepo "github.com/gulfwash/carwash-scheduler/internal/infra/repository"
	"github.com/gulfwash/carwash-scheduler/internal/middleware"
	"github.com/gulfwash/carwash-scheduler/internal/models"
	"github.com/gulfwash/carwash-scheduler/internal/notify"
	"github.com/gulfwash/carwash-scheduler/internal/opzone"
	"github.com/gulfwash/carwash-scheduler/internal/slots"
	ucBooking "github.com/gulfwash/carwash-scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	zone *opzone.Zone,
	catalog *slots.Catalog,
	dispatcher *notify.Dispatcher,
	notifySvc *notify.Service,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	env := &ucBooking.Env{
		Repo:    bookingRepo,
		Catalog: catalog,
		Zone:    zone,
		Notify:  dispatcher,
		Params: ucBooking.Params{
			WindowDays:        cfg.BookingWindowDays,
			PerEmployeeBudget: cfg.BookingsPerEmployee,
			SlotLengthMinutes: cfg.SlotLengthMinutes,
			DefaultCapacity:   cfg.DefaultCapacity,
		},
	}

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(env)
	updateStatusUC := ucBooking.NewUpdateStatus(env)
	rescheduleUC := ucBooking.NewReschedule(env)
	assignEmployeeUC := ucBooking.NewAssignEmployee(env)
	addReviewUC := ucBooking.NewAddReview(env)
	makePaymentUC := ucBooking.NewMakePayment(env)
	checkAvailabilityUC := ucBooking.NewCheckAvailability(env)
	listDaySlotsUC := ucBooking.NewListDaySlots(env)
	publishAvailabilityUC := ucBooking.NewPublishAvailability(env)
	resolveFlagUC := ucBooking.NewResolveFlag(env)
	queries := ucBooking.NewQueries(env)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateStatusUC,
		rescheduleUC,
		assignEmployeeUC,
		addReviewUC,
		makePaymentUC,
		checkAvailabilityUC,
		listDaySlotsUC,
		queries,
		zone,
	)

	employeeHandler := handlers.NewEmployeeHandler(
		publishAvailabilityUC,
		resolveFlagUC,
		queries,
		zone,
	)

	notificationHandler := handlers.NewNotificationHandler(notifySvc)

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
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/services", bookingHandler.ListServices)
		api.GET("/bookings/slots", bookingHandler.DaySlots)
		api.GET("/bookings/availability", bookingHandler.CheckAvailability)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/:id", bookingHandler.GetByID)
			secured.GET("/bookings/customer/:userID", bookingHandler.ListByCustomer)
			secured.POST("/bookings/:id/payment", bookingHandler.MakePayment)
			secured.POST("/bookings/:id/review", bookingHandler.AddReview)
			secured.PUT("/bookings/:id/reschedule", bookingHandler.Reschedule)

			secured.PATCH("/bookings/:id/employee-status",
				middleware.RequireRoles(models.RoleEmployee, models.RoleAdmin),
				bookingHandler.EmployeeUpdateStatus)

			// ------------------------------
			// EMPLOYEES
			// ------------------------------
			secured.GET("/bookings/employee/:employeeID",
				middleware.RequireRoles(models.RoleEmployee, models.RoleManager, models.RoleAdmin),
				bookingHandler.ListByEmployee)

			secured.PUT("/employees/:id/availability",
				middleware.RequireRoles(models.RoleEmployee, models.RoleManager, models.RoleAdmin),
				employeeHandler.PublishAvailability)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/notifications", notificationHandler.ListMine)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

			// ------------------------------
			// STAFF
			// ------------------------------
			staff := secured.Group("/")
			staff.Use(middleware.RequireRoles(models.RoleManager, models.RoleAdmin))
			{
				staff.GET("/bookings", bookingHandler.List)
				staff.PUT("/bookings/:id/assign-employee", bookingHandler.AssignEmployee)
				staff.PATCH("/bookings/:id/manager-status", bookingHandler.ManagerUpdateStatus)
				staff.DELETE("/bookings/:id", bookingHandler.Delete)

				staff.GET("/employees/available", employeeHandler.Available)
				staff.PUT("/employees/:id/flags/:flagIndex/resolve", employeeHandler.ResolveFlag)
			}
		}
	}
}
