package api

import (
	stdhttp "net/http"

	intconfig "goairline/internal/config"
	h "goairline/internal/http/handlers"
	"goairline/internal/http/middleware"
	"goairline/internal/services"
	"goairline/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the services the routes are bound to.
type Deps struct {
	Carts    *services.CartService
	Docs     services.DocsService
	Gatherer prometheus.Gatherer
}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.L().Warnw("failed to set trusted proxies", "error", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	carts := h.CartHandler{Carts: deps.Carts}
	bookings := h.BookingHandler{Docs: deps.Docs}
	auth := middleware.AuthRequired([]byte(env.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		admin := api.Group("", auth, middleware.RequireRoles("admin"))
		admin.GET("/db-check", h.DBCheck)
		admin.GET("/routes", h.Routes)

		// Carts
		cart := api.Group("/carts")
		cart.POST("", carts.Create)
		cart.GET("/:id", carts.Get)
		cart.DELETE("/:id", carts.Discard)

		cart.PUT("/:id/passengers", carts.ResizeRoster)
		cart.POST("/:id/passengers", carts.AddPassenger)
		cart.PATCH("/:id/passengers/:index", carts.UpdatePassenger)
		cart.DELETE("/:id/passengers/:index", carts.RemovePassenger)

		cart.PUT("/:id/segments/:segment/contact", carts.SetContact)
		cart.POST("/:id/contact/seed", carts.SeedContact)

		cart.GET("/:id/seats", carts.SeatMap)
		cart.POST("/:id/seats", carts.SelectSeat)
		cart.POST("/:id/segments/:segment/seats", carts.SelectSeat)
		cart.POST("/:id/inventory/refresh", carts.RefreshInventory)

		cart.POST("/:id/next", carts.Next)
		cart.POST("/:id/prev", carts.Prev)

		cart.GET("/:id/validation", carts.Validate)
		cart.GET("/:id/payload", carts.Payload)
		cart.POST("/:id/submit", auth, carts.Submit)

		// Bookings
		api.GET("/bookings/:reference/e-ticket", auth, bookings.ETicket)
	}

	h.SetRouter(r)
	return r
}
