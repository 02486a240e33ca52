package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"priceoracle/internal/adapters/httpclient"
	"priceoracle/internal/api"
	"priceoracle/internal/config"
	"priceoracle/internal/oracle"
	"priceoracle/internal/oracle/handler"
	httpserver "priceoracle/internal/platform/http"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// Run wires the application components and serves HTTP until SIGINT/SIGTERM.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := newRouter(appCfg)
	if err != nil {
		return err
	}

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// newRouter builds the request pipeline. An invalid key fails here, before anything listens.
func newRouter(appCfg *config.AppConfig) (http.Handler, error) {
	key, err := oracle.ParseKey(appCfg.Oracle.PrivateKey)
	if err != nil {
		logrus.WithError(err).Error("Failed to load oracle key")
		return nil, err
	}
	if !key.Consistent() {
		logrus.Warn("Oracle key: trailing 32 bytes don't match the public key derived from the seed; only the seed is used")
	}
	signer := oracle.NewEd25519Signer(key)
	logrus.WithField("public_key", oracle.NewPublicKeyInfo(signer.PublicKey()).PublicKey).Info("✅ Oracle key loaded")

	policy := oracle.NewPolicy(appCfg.Oracle.Credentials())
	if policy.Enabled() {
		logrus.Infof("Client authorization enabled, %d trusted client keys", policy.Size())
	} else {
		logrus.Warn("No trusted client keys configured, price endpoint is public")
	}

	// Base HTTP client (configurable timeout)
	fetchTimeout := time.Duration(appCfg.PriceSource.TimeoutSeconds) * time.Second
	if fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: fetchTimeout}
	priceClient := httpclient.NewPriceClient(baseHTTPClient, appCfg.PriceSource.URL)

	service := oracle.NewService(priceClient, signer, clockwork.NewRealClock(), fetchTimeout)
	priceHandler := handler.NewPriceHandler(policy, service)
	limiter := httpserver.NewRateLimiter(appCfg.RateLimit.RPS, appCfg.RateLimit.Burst)

	return api.NewRouter(priceHandler, limiter), nil
}
