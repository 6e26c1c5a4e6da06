package handlers

type HealthResponse struct {
	Status          string   `json:"status"`
	Service         string   `json:"service"`
	AvailableCities []string `json:"available_cities"`
}

type WeatherResponse struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
