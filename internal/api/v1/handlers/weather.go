package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"travelboard/weather-backend/internal/cities"
	"travelboard/weather-backend/internal/service"
)

type WeatherHandler struct {
	weatherService service.WeatherService
	registry       *cities.Registry
	serviceName    string
	timeout        time.Duration
}

func NewWeatherHandler(weatherService service.WeatherService, registry *cities.Registry, serviceName string, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		registry:       registry,
		serviceName:    serviceName,
		timeout:        timeout,
	}
}

// Health reports liveness and the supported city keys. It never touches the
// upstream provider, so it works with or without a configured credential.
func (h *WeatherHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{
		Status:          "running",
		Service:         h.serviceName,
		AvailableCities: h.registry.Keys(),
	})
}

func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	cityKey := mux.Vars(r)["city"]

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.weatherService.GetWeather(ctx, cityKey)
	if err != nil {
		log.Error().Err(err).Str("city", cityKey).Msg("failed to get weather data")
		respondWithWeatherError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, WeatherResponse{
		City:        result.City,
		Temperature: result.Temperature,
		Description: result.Description,
		Humidity:    result.Humidity,
		WindSpeed:   result.WindSpeed,
	})
}
