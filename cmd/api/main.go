package main

import (
	"context"
	"errors"
	"esewabridge/internal/commerce"
	"esewabridge/internal/payments"
	"esewabridge/internal/ratelimiter"
	"expvar"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig(logger *zap.SugaredLogger) ratelimiter.Config {
	// Default values
	defaultRequests := 200
	defaultEnabled := false

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil && parsedVal > 0 {
			requestsPerTimeFrame = parsedVal
		} else {
			logger.Warnw("invalid RATELIMITER_REQUESTS_COUNT, using default", "value", val, "default", defaultRequests)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			logger.Warnw("invalid RATE_LIMITER_ENABLED, using default", "value", val, "default", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)

	return zap.New(core).Sugar(), nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvList(key, fallback string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(key, fallback), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func loadConfig(logger *zap.SugaredLogger) config {
	return config{
		addr:   getEnv("ADDR", ":8080"),
		env:    getEnv("ENV", "development"),
		apiURL: getEnv("EXTERNAL_URL", "localhost:8080"),
		esewa: esewaConfig{
			merchantCode: os.Getenv("ESEWA_MERCHANT_CODE"),
			successURL:   os.Getenv("ESEWA_SUCCESS_URL"),
			failureURL:   os.Getenv("ESEWA_FAILURE_URL"),
			paymentURL:   getEnv("ESEWA_PAYMENT_URL", payments.EsewaPaymentURL),
			verifyURL:    getEnv("ESEWA_VERIFY_URL", payments.EsewaVerifyURL),
		},
		shopify: shopifyConfig{
			shopDomain:  os.Getenv("SHOPIFY_SHOP_DOMAIN"),
			accessToken: os.Getenv("SHOPIFY_ACCESS_TOKEN"),
			apiVersion:  getEnv("SHOPIFY_API_VERSION", commerce.DefaultAPIVersion),
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
		},
		cors: corsConfig{
			allowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", "https://*,http://*"),
		},
		rateLimiter: LoadRateLimiterConfig(logger),
	}
}

// warnMissing logs settings the outbound calls need. They are not enforced:
// the affected requests fail at call time instead.
func warnMissing(logger *zap.SugaredLogger, cfg config) {
	required := map[string]string{
		"ESEWA_MERCHANT_CODE":  cfg.esewa.merchantCode,
		"ESEWA_SUCCESS_URL":    cfg.esewa.successURL,
		"ESEWA_FAILURE_URL":    cfg.esewa.failureURL,
		"SHOPIFY_SHOP_DOMAIN":  cfg.shopify.shopDomain,
		"SHOPIFY_ACCESS_TOKEN": cfg.shopify.accessToken,
	}
	for key, val := range required {
		if val == "" {
			logger.Warnw("missing configuration", "key", key)
		}
	}
}

var version = "1.0.0"

//	@title			eSewa Shopify Bridge API
//	@description	Starts eSewa payments and turns verified eSewa callbacks into Shopify orders.

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/
//	@securityDefinitions.basic	BasicAuth

func main() {
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// A missing .env is fine when the environment is injected directly.
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Infow("no .env file found, using process environment")
		} else {
			logger.Fatalw("error loading .env file", "error", err)
		}
	}

	cfg := loadConfig(logger)
	warnMissing(logger, cfg)

	// eSewa
	esewa := payments.NewEsewaAdapter(
		cfg.esewa.merchantCode,
		cfg.esewa.successURL,
		cfg.esewa.failureURL,
		resty.New(),
	)
	esewa.PaymentURL = cfg.esewa.paymentURL
	esewa.VerifyURL = cfg.esewa.verifyURL

	paymentManager := payments.NewPaymentManager()
	paymentManager.RegisterGateway(payments.MethodEsewa, esewa)

	// Shopify
	shopify := commerce.NewShopifyClient(
		cfg.shopify.shopDomain,
		cfg.shopify.accessToken,
		cfg.shopify.apiVersion,
		resty.New(),
	)

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)
	defer rateLimiter.Stop()

	app := &application{
		config:           cfg,
		logger:           logger,
		payments:         paymentManager,
		orders:           shopify,
		rateLimiter:      rateLimiter,
		newTransactionID: payments.NewTransactionID,
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.run(ctx, mux); err != nil {
		logger.Fatalw("server error", "error", err)
	}
}
