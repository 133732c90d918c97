package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"hotel-reservation/internal/domain/authz"
	"hotel-reservation/internal/handler/api"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/infra/metrics"
	"hotel-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine              *gin.Engine
	Config              config.Config
	AuthHandler         *api.AuthHandler
	AvailabilityHandler *api.AvailabilityHandler
	CatalogHandler      *api.CatalogHandler
	ReservationHandler  *api.ReservationHandler
	PaymentHandler      *api.PaymentHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Logger              *middleware.Logger
	Metrics             *metrics.Metrics
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger, p.Metrics)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	if m != nil {
		engine.Use(m.Middleware())
	}
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine, am := p.Engine, p.AuthMiddleware

	engine.GET("/health", healthCheck)
	if p.Metrics != nil {
		engine.GET("/metrics", p.Metrics.Handler())
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.AuthHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(am.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: p.AvailabilityHandler.Search},
			{Method: http.MethodGet, Path: "/room-types", Handler: p.CatalogHandler.ListRoomTypes},
			{Method: http.MethodGet, Path: "/room-types/:id", Handler: p.CatalogHandler.GetRoomType},
			{Method: http.MethodPost, Path: "/payments/notify", Handler: p.PaymentHandler.Notify},
		})

		staff := apiGroup.Group("")
		staff.Use(am.RequireAuth())
		addRoutes(staff, []route{
			{Method: http.MethodPost, Path: "/room-types", Handler: p.CatalogHandler.CreateRoomType,
				Mw: []gin.HandlerFunc{am.RequireCapability(authz.ManageRooms)}},
			{Method: http.MethodPatch, Path: "/room-types/:id", Handler: p.CatalogHandler.UpdateRoomTypeRates,
				Mw: []gin.HandlerFunc{am.RequireCapability(authz.ManageRooms)}},
			{Method: http.MethodGet, Path: "/rooms", Handler: p.CatalogHandler.ListRooms,
				Mw: []gin.HandlerFunc{am.RequireCapability(authz.ManageRooms, authz.UpdateHousekeeping)}},
			{Method: http.MethodPost, Path: "/rooms", Handler: p.CatalogHandler.CreateRoom,
				Mw: []gin.HandlerFunc{am.RequireCapability(authz.ManageRooms)}},
			{Method: http.MethodPatch, Path: "/rooms/:id/status", Handler: p.CatalogHandler.UpdateRoomStatus,
				Mw: []gin.HandlerFunc{am.RequireCapability(authz.UpdateHousekeeping)}},
			{Method: http.MethodPost, Path: "/payments/checkout", Handler: p.PaymentHandler.Checkout,
				Mw: []gin.HandlerFunc{am.RequireCapability(authz.CreateBooking, authz.ManageBookings)}},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(am.RequireAuth())
		{
			canView := am.RequireCapability(authz.ViewBookings, authz.ViewOwnBookings)
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: p.ReservationHandler.CreateReservation,
					Mw: []gin.HandlerFunc{am.RequireCapability(authz.CreateBooking)}},
				{Method: http.MethodGet, Path: "", Handler: p.ReservationHandler.ListReservations,
					Mw: []gin.HandlerFunc{canView}},
				{Method: http.MethodGet, Path: "/:id", Handler: p.ReservationHandler.GetReservation,
					Mw: []gin.HandlerFunc{canView}},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: p.ReservationHandler.Confirm,
					Mw: []gin.HandlerFunc{am.RequireCapability(authz.ManageBookings)}},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: p.ReservationHandler.CheckIn,
					Mw: []gin.HandlerFunc{am.RequireCapability(authz.CheckInGuests)}},
				{Method: http.MethodPost, Path: "/:id/check-out", Handler: p.ReservationHandler.CheckOut,
					Mw: []gin.HandlerFunc{am.RequireCapability(authz.CheckInGuests)}},
				// Ownership is checked by the command; guests may cancel their own bookings.
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: p.ReservationHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/desk-payment", Handler: p.ReservationHandler.RecordDeskPayment,
					Mw: []gin.HandlerFunc{am.RequireCapability(authz.RecordPayments)}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
