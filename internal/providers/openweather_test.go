package providers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
	"travelboard/weather-backend/internal/providers"

	"github.com/stretchr/testify/suite"
)

type OpenWeatherMapClientTestSuite struct {
	suite.Suite
	server    *httptest.Server
	client    *providers.OpenWeatherMapClient
	lastQuery url.Values
	hits      int
}

func (s *OpenWeatherMapClientTestSuite) SetupTest() {
	s.lastQuery = nil
	s.hits = 0

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits++
		s.lastQuery = r.URL.Query()

		switch r.URL.Query().Get("q") {
		case "Sydney":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"main": map[string]interface{}{
					"temp":     15.04,
					"humidity": 72,
				},
				"weather": []map[string]interface{}{
					{"description": "light rain"},
				},
				"wind": map[string]interface{}{
					"speed": 3.26,
				},
			})
		case "Unauthorized":
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"cod":     401,
				"message": "Invalid API key",
			})
		case "NotFound":
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"cod":     "404",
				"message": "city not found",
			})
		case "MalformedJSON":
			w.Write([]byte("{malformed json"))
		case "MissingWind":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"main": map[string]interface{}{
					"temp":     15.04,
					"humidity": 72,
				},
				"weather": []map[string]interface{}{
					{"description": "light rain"},
				},
			})
		case "MissingConditions":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"main": map[string]interface{}{
					"temp":     15.04,
					"humidity": 72,
				},
				"weather": []map[string]interface{}{},
				"wind": map[string]interface{}{
					"speed": 3.26,
				},
			})
		case "MissingHumidity":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"main": map[string]interface{}{
					"temp": 15.04,
				},
				"weather": []map[string]interface{}{
					{"description": "light rain"},
				},
				"wind": map[string]interface{}{
					"speed": 3.26,
				},
			})
		case "Slow":
			select {
			case <-r.Context().Done():
			case <-time.After(3 * time.Second):
			}
		case "SlowBody":
			w.Write([]byte(`{"main":{"temp":15.04,`))
			w.(http.Flusher).Flush()
			select {
			case <-r.Context().Done():
			case <-time.After(3 * time.Second):
			}
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	s.client = providers.NewOpenWeatherMapClient(s.server.URL, "test-api-key", 2*time.Second)
}

func (s *OpenWeatherMapClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *OpenWeatherMapClientTestSuite) TestCurrentWeather_Success() {
	observation, err := s.client.CurrentWeather(context.Background(), "Sydney")

	s.NoError(err)
	s.Equal(15.04, observation.Temperature)
	s.Equal("light rain", observation.Description)
	s.Equal(72, observation.Humidity)
	s.Equal(3.26, observation.WindSpeed)
}

func (s *OpenWeatherMapClientTestSuite) TestCurrentWeather_QueryParameters() {
	_, err := s.client.CurrentWeather(context.Background(), "Sydney")

	s.NoError(err)
	s.Equal("Sydney", s.lastQuery.Get("q"))
	s.Equal("test-api-key", s.lastQuery.Get("appid"))
	s.Equal("metric", s.lastQuery.Get("units"))
}

func (s *OpenWeatherMapClientTestSuite) TestCurrentWeather_EncodesMultiWordCity() {
	// "New York" is not in the stub's switch, so the stub answers 500; the
	// query must still arrive intact.
	_, err := s.client.CurrentWeather(context.Background(), "New York")

	s.Error(err)
	s.Equal("New York", s.lastQuery.Get("q"))
}

func (s *OpenWeatherMapClientTestSuite) TestCurrentWeather_MissingAPIKey() {
	client := providers.NewOpenWeatherMapClient(s.server.URL, "", 2*time.Second)

	_, err := client.CurrentWeather(context.Background(), "Sydney")

	s.ErrorIs(err, providers.ErrAPIKeyMissing)
	s.Equal(0, s.hits)
}

func (s *OpenWeatherMapClientTestSuite) TestCurrentWeather_UpstreamStatus() {
	_, err := s.client.CurrentWeather(context.Background(), "Unauthorized")

	var statusErr *providers.UpstreamStatusError
	s.ErrorAs(err, &statusErr)
	s.Equal(http.StatusUnauthorized, statusErr.StatusCode)
}

func (s *OpenWeatherMapClientTestSuite) TestCurrentWeather_UpstreamNotFound() {
	_, err := s.client.CurrentWeather(context.Background(), "NotFound")

	var statusErr *providers.UpstreamStatusError
	s.ErrorAs(err, &statusErr)
	s.Equal(http.StatusNotFound, statusErr.StatusCode)
}

func (s *OpenWeatherMapClientTestSuite) TestCurrentWeather_ClientTimeout() {
	client := providers.NewOpenWeatherMapClient(s.server.URL, "test-api-key", 100*time.Millisecond)

	_, err := client.CurrentWeather(context.Background(), "Slow")

	s.ErrorIs(err, providers.ErrTimeout)
}

func (s *OpenWeatherMapClientTestSuite) TestCurrentWeather_BodyReadTimeout() {
	// Headers arrive in time but the body stalls past the client deadline.
	client := providers.NewOpenWeatherMapClient(s.server.URL, "test-api-key", 100*time.Millisecond)

	_, err := client.CurrentWeather(context.Background(), "SlowBody")

	s.ErrorIs(err, providers.ErrTimeout)
}

func (s *OpenWeatherMapClientTestSuite) TestCurrentWeather_ContextDeadline() {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := s.client.CurrentWeather(ctx, "Slow")

	s.ErrorIs(err, providers.ErrTimeout)
}

func (s *OpenWeatherMapClientTestSuite) TestCurrentWeather_NetworkError() {
	s.server.Close()

	_, err := s.client.CurrentWeather(context.Background(), "Sydney")

	s.ErrorIs(err, providers.ErrNetwork)
}

func (s *OpenWeatherMapClientTestSuite) TestCurrentWeather_MalformedJSON() {
	_, err := s.client.CurrentWeather(context.Background(), "MalformedJSON")

	s.ErrorIs(err, providers.ErrMalformedData)
}

func (s *OpenWeatherMapClientTestSuite) TestCurrentWeather_MissingWindSpeed() {
	_, err := s.client.CurrentWeather(context.Background(), "MissingWind")

	s.ErrorIs(err, providers.ErrMalformedData)
}

func (s *OpenWeatherMapClientTestSuite) TestCurrentWeather_MissingConditions() {
	_, err := s.client.CurrentWeather(context.Background(), "MissingConditions")

	s.ErrorIs(err, providers.ErrMalformedData)
}

func (s *OpenWeatherMapClientTestSuite) TestCurrentWeather_MissingHumidity() {
	_, err := s.client.CurrentWeather(context.Background(), "MissingHumidity")

	s.ErrorIs(err, providers.ErrMalformedData)
}

func TestOpenWeatherMapClientSuite(t *testing.T) {
	suite.Run(t, new(OpenWeatherMapClientTestSuite))
}
