package main

import (
	"context"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"travelboard/weather-backend/config"
	"travelboard/weather-backend/internal/api/v1/handlers"
	"travelboard/weather-backend/internal/cities"
	"travelboard/weather-backend/internal/middleware"
	"travelboard/weather-backend/internal/providers"
	"travelboard/weather-backend/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := zerolog.New(os.Stdout).
		Level(serverLogLevel(conf.LogLevel)).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	if conf.OpenWeatherAPIKey == "" {
		logger.Warn().Msg("OPENWEATHER_API_KEY is not set, weather lookups will fail until it is configured")
	}

	registry := cities.Default()

	openWeatherClient := providers.NewOpenWeatherMapClient(conf.OpenWeatherBaseURL, conf.OpenWeatherAPIKey, conf.UpstreamTimeout)

	weatherService := service.NewWeatherService(registry, openWeatherClient)

	handler := handlers.NewWeatherHandler(weatherService, registry, conf.ServiceName, conf.HTTPTimeoutDuration())
	router := handlers.NewRouter(handler)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           middleware.RequestLogger(logger)(cors.AllowAll().Handler(router)),
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func serverLogLevel(value string) zerolog.Level {
	level, err := zerolog.ParseLevel(value)
	// ParseLevel maps the empty string to NoLevel, which would drop every event.
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
