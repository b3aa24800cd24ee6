package api

import (
	"encoding/json"
	"net/http"

	"serwer-mediow/internal/config"
	"serwer-mediow/internal/database"
	"serwer-mediow/internal/storage"
	"serwer-mediow/internal/websocket"
)

type Server struct {
	config  *config.Config
	store   *database.Store
	storage *storage.LocalStorage
	wsHub   *websocket.Hub
}

func NewServer(cfg *config.Config, store *database.Store, storage *storage.LocalStorage, wsHub *websocket.Hub) *Server {
	return &Server{
		config:  cfg,
		store:   store,
		storage: storage,
		wsHub:   wsHub,
	}
}

// StatusResponse is the result envelope of every mutating operation: a null
// error on success, a message otherwise. Core failures are reported inside
// this envelope with HTTP 200; only malformed requests get transport-level
// status codes.
type StatusResponse struct {
	Error *string `json:"error"`
}

func respondJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func respondOK(w http.ResponseWriter) {
	respondJSON(w, StatusResponse{Error: nil})
}

func respondError(w http.ResponseWriter, message string) {
	respondJSON(w, StatusResponse{Error: &message})
}

// @Summary      Health check
// @Description  Reports whether the server is up.
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string "OK"
// @Router       /health [get]
func (s *Server) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
