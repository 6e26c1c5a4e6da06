package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"net/http"
	"strings"
	"travelboard/weather-backend/internal/providers"
	"travelboard/weather-backend/internal/service"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// respondWithWeatherError translates provider and service errors into the
// API's error payloads. Anything unclassified counts as a network failure.
func respondWithWeatherError(w http.ResponseWriter, err error) {
	var unknownCity *service.UnknownCityError
	var upstreamStatus *providers.UpstreamStatusError

	switch {
	case errors.As(err, &unknownCity):
		respondWithError(w, http.StatusBadRequest, "Invalid city",
			fmt.Sprintf("City '%s' not supported. Available cities: [%s]",
				unknownCity.Key, strings.Join(unknownCity.Supported, ", ")))
	case errors.Is(err, providers.ErrAPIKeyMissing):
		respondWithError(w, http.StatusInternalServerError, "Configuration error",
			"OpenWeatherMap API key not configured")
	case errors.Is(err, providers.ErrTimeout):
		respondWithError(w, http.StatusGatewayTimeout, "Timeout",
			"Request to OpenWeatherMap API timed out")
	case errors.As(err, &upstreamStatus):
		respondWithError(w, http.StatusBadGateway, "API Error",
			fmt.Sprintf("OpenWeatherMap API returned an error: %d", upstreamStatus.StatusCode))
	case errors.Is(err, providers.ErrMalformedData):
		respondWithError(w, http.StatusBadGateway, "Data Error",
			"Unexpected response format from OpenWeatherMap API")
	default:
		respondWithError(w, http.StatusBadGateway, "Network Error",
			"Failed to connect to OpenWeatherMap API")
	}
}

func respondWithError(w http.ResponseWriter, code int, label, message string) {
	respondWithJSON(w, code, ErrorResponse{
		Error:   label,
		Message: message,
	})
}
