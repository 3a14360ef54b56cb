package main

import (
	"context"
	"errors"
	"esewabridge/docs" //this is required to generate swagger docs
	"esewabridge/internal/commerce"
	"esewabridge/internal/payments"
	"esewabridge/internal/ratelimiter"
	"expvar"

	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config      config
	logger      *zap.SugaredLogger
	payments    *payments.PaymentManager
	orders      commerce.OrderCreator
	rateLimiter ratelimiter.Limiter

	newTransactionID func() string
}

type config struct {
	addr        string
	env         string
	apiURL      string
	esewa       esewaConfig
	shopify     shopifyConfig
	auth        authConfig
	cors        corsConfig
	rateLimiter ratelimiter.Config
}

type esewaConfig struct {
	merchantCode string
	successURL   string
	failureURL   string
	paymentURL   string
	verifyURL    string
}

type shopifyConfig struct {
	shopDomain  string
	accessToken string
	apiVersion  string
}

type authConfig struct {
	basic basicConfig
}

type basicConfig struct {
	user string
	pass string
}

type corsConfig struct {
	allowedOrigins []string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.cors.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// The bridge routes carry no deadline of their own: verification and order
	// creation run until the upstream answers or the client goes away.
	r.Group(func(r chi.Router) {
		r.Use(app.RateLimiterMiddleware)

		r.Post("/start-esewa-payment", app.startEsewaPaymentHandler)
		r.Get("/esewa-success", app.esewaSuccessHandler)
		r.Get("/esewa-failure", app.esewaFailureHandler)
	})

	r.Route("/v1", func(r chi.Router) {
		//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
		r.Use(middleware.Timeout(60 * time.Second))

		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/v1/swagger/doc.json")))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)
	})

	return r
}

// run serves mux until ctx is cancelled, then shuts down gracefully. A clean
// shutdown returns nil.
func (app *application) run(ctx context.Context, mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 90,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error, 1)

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("shutdown requested", "reason", context.Cause(ctx).Error())

		shutdown <- srv.Shutdown(shutdownCtx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
