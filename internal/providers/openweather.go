package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

var (
	ErrAPIKeyMissing = errors.New("openweathermap API key not configured")
	ErrTimeout       = errors.New("request to openweathermap timed out")
	ErrNetwork       = errors.New("failed to connect to openweathermap")
	ErrMalformedData = errors.New("unexpected response format from openweathermap")
)

// UpstreamStatusError reports a non-success HTTP status from the provider.
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("openweathermap returned status code: %d", e.StatusCode)
}

// Observation is the subset of the provider response this service consumes,
// unmodified: no rounding, description as delivered.
type Observation struct {
	Temperature float64
	Description string
	Humidity    int
	WindSpeed   float64
}

type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) (Observation, error)
}

type OpenWeatherMapClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewOpenWeatherMapClient(baseURL, apiKey string, timeout time.Duration) *OpenWeatherMapClient {
	return &OpenWeatherMapClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Pointer leaves distinguish absent fields from zero values; every leaf below
// is required for a usable observation.
type currentWeatherResponse struct {
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description *string `json:"description"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}

// CurrentWeather issues a single GET to the provider for the given city
// display name. The call is bounded by the client timeout and is never
// retried; every failure mode maps to one of the package error values.
func (c *OpenWeatherMapClient) CurrentWeather(ctx context.Context, city string) (Observation, error) {
	if c.apiKey == "" {
		return Observation{}, ErrAPIKeyMissing
	}

	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Observation{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return Observation{}, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return Observation{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Observation{}, &UpstreamStatusError{StatusCode: resp.StatusCode}
	}

	var payload currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		// The deadline can fire while the body is still streaming; that read
		// error surfaces through Decode and is a timeout, not bad data.
		if isTimeout(err) {
			return Observation{}, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return Observation{}, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	return payload.observation()
}

func (p *currentWeatherResponse) observation() (Observation, error) {
	if p.Main == nil || p.Main.Temp == nil || p.Main.Humidity == nil {
		return Observation{}, fmt.Errorf("%w: missing main fields", ErrMalformedData)
	}
	if len(p.Weather) == 0 || p.Weather[0].Description == nil {
		return Observation{}, fmt.Errorf("%w: missing weather conditions", ErrMalformedData)
	}
	if p.Wind == nil || p.Wind.Speed == nil {
		return Observation{}, fmt.Errorf("%w: missing wind fields", ErrMalformedData)
	}

	return Observation{
		Temperature: *p.Main.Temp,
		Description: *p.Weather[0].Description,
		Humidity:    *p.Main.Humidity,
		WindSpeed:   *p.Wind.Speed,
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
