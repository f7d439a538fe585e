package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goairline/internal/cart"
	intconfig "goairline/internal/config"
	router "goairline/internal/http"
	"goairline/internal/metrics"
	"goairline/internal/repositories"
	"goairline/internal/services"
	"goairline/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	env := intconfig.LoadEnv()
	log, err := utils.InitLogger(env.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := env.Validate(); err != nil {
		log.Fatalw("konfigurasi tidak valid", "error", err)
	}

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.ConnectDB(env.DBDSN)
	if err != nil {
		log.Fatalw("gagal koneksi database", "error", err)
	}
	defer intconfig.CloseDB()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := repositories.EnsureSchema(ctx, db); err != nil {
		log.Fatalw("gagal menyiapkan schema", "error", err)
	}

	mode, ok := cart.ParseBindingMode(env.SeatBindingMode)
	if !ok {
		log.Warnw("unknown SEAT_BINDING_MODE, using REPACK", "value", env.SeatBindingMode)
		mode = cart.BindRepack
	}

	reg := prometheus.NewRegistry()
	m := metrics.New("goairline", reg)
	bookingRepo := repositories.BookingRepo{DB: db}

	carts := &services.CartService{
		Flights: repositories.FlightRepo{DB: db},
		Seats:   repositories.SeatRepo{DB: db},
		Booking: services.BookingService{
			Store:           bookingRepo,
			RequireDocument: env.RequireTravelDocument,
			Metrics:         m,
		},
		Engine:          cart.Engine{Mode: mode},
		ReferencePrefix: env.BookingRefPrefix,
		IdleTTL:         env.CartIdleTTL,
		Metrics:         m,
	}
	go carts.RunJanitor(ctx, time.Minute)

	r := router.NewRouter(env, router.Deps{
		Carts:    carts,
		Docs:     services.DocsService{Bookings: bookingRepo},
		Gatherer: reg,
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infow("server listening", "addr", env.AppAddr, "binding_mode", mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("gagal menjalankan server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Mematikan server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("shutdown server gagal", "error", err)
	}

	log.Info("Server berhenti dengan aman.")
}
