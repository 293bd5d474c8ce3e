package handlers

import (
	"encoding/json"
	"net/http"
)

type HealthResponse struct {
	Status      string `json:"status"`
	CountTables int    `json:"countTables"`
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"service": "miniblog",
		"status":  "ok",
	})
}

// HealthHandler проверяет доступность БД и возвращает число таблиц схемы
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesRepo.CountTablesDB()
	if err != nil {
		WriteError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, HealthResponse{Status: "ok", CountTables: count}, http.StatusOK)
}
