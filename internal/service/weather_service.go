package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"travelboard/weather-backend/internal/cities"
	"travelboard/weather-backend/internal/providers"
)

// WeatherResult is the reshaped payload returned to callers. City always
// carries the registry display name, never the upstream echo.
type WeatherResult struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// UnknownCityError reports a lookup key that is not in the registry.
type UnknownCityError struct {
	Key       string
	Supported []string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("city %q not supported, available cities: [%s]", e.Key, strings.Join(e.Supported, ", "))
}

type WeatherService interface {
	GetWeather(ctx context.Context, cityKey string) (WeatherResult, error)
}

type weatherService struct {
	registry *cities.Registry
	provider providers.WeatherProvider
}

func NewWeatherService(registry *cities.Registry, provider providers.WeatherProvider) WeatherService {
	return &weatherService{
		registry: registry,
		provider: provider,
	}
}

// GetWeather validates the city key before anything else, so an unsupported
// key is reported even when the credential is missing.
func (s *weatherService) GetWeather(ctx context.Context, cityKey string) (WeatherResult, error) {
	name, ok := s.registry.DisplayName(cityKey)
	if !ok {
		return WeatherResult{}, &UnknownCityError{Key: cityKey, Supported: s.registry.Keys()}
	}

	obs, err := s.provider.CurrentWeather(ctx, name)
	if err != nil {
		return WeatherResult{}, err
	}

	return WeatherResult{
		City:        name,
		Temperature: round1(obs.Temperature),
		Description: capitalize(obs.Description),
		Humidity:    obs.Humidity,
		WindSpeed:   round1(obs.WindSpeed),
	}, nil
}

// round1 rounds to one decimal place, halves away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// capitalize upper-cases the first rune and leaves the rest untouched.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
