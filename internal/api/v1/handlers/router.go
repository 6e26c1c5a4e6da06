package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(h *WeatherHandler) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/weather/{city}", h.GetWeather).Methods(http.MethodGet)

	return router
}
