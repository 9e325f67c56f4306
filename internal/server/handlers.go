package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/carwise/carwise/internal/common"
	"github.com/carwise/carwise/internal/compare"
	"github.com/carwise/carwise/internal/model"
	"github.com/carwise/carwise/internal/scoring"
	"github.com/carwise/carwise/internal/service"
)

// Handler provides the HTTP API endpoints.
type Handler struct {
	store service.Storage
}

// NewHandler creates a new API handler backed by the given storage.
func NewHandler(store service.Storage) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes sets up all API routes.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/vehicles", h.handleListVehicles).Methods(http.MethodGet)
	r.HandleFunc("/vehicles", h.handleSaveVehicle).Methods(http.MethodPost)
	r.HandleFunc("/vehicles/{id}", h.handleGetVehicle).Methods(http.MethodGet)
	r.HandleFunc("/vehicles/{id}", h.handleDeleteVehicle).Methods(http.MethodDelete)
	r.HandleFunc("/vehicles/{id}/scores", h.handleScores).Methods(http.MethodGet)

	r.HandleFunc("/compare", h.handleCompare).Methods(http.MethodGet)
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		common.LogError(err, "failed to encode response", nil)
	}
}

// respondError sends a JSON error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleListVehicles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := service.VehicleFilter{
		Make:     query.Get("make"),
		Category: query.Get("category"),
		Status:   query.Get("status"),
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}

	vehicles, err := h.store.ListVehicles(r.Context(), filter)
	if err != nil {
		common.LogError(err, "failed to list vehicles", common.Fields{"filter": filter})
		respondError(w, http.StatusInternalServerError, "failed to list vehicles")
		return
	}
	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}
	respondJSON(w, http.StatusOK, vehicles)
}

func (h *Handler) handleSaveVehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle model.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		respondError(w, http.StatusBadRequest, "invalid vehicle payload")
		return
	}
	if err := vehicle.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SaveVehicle(r.Context(), &vehicle); err != nil {
		common.LogError(err, "failed to save vehicle", common.Fields{"id": vehicle.ID})
		respondError(w, http.StatusInternalServerError, "failed to save vehicle")
		return
	}
	respondJSON(w, http.StatusCreated, vehicle)
}

func (h *Handler) handleGetVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	vehicle, err := h.store.GetVehicle(r.Context(), id)
	if errors.Is(err, common.ErrNotFound) {
		respondError(w, http.StatusNotFound, "vehicle not found")
		return
	}
	if err != nil {
		common.LogError(err, "failed to get vehicle", common.Fields{"id": id})
		respondError(w, http.StatusInternalServerError, "failed to get vehicle")
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

func (h *Handler) handleDeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.store.DeleteVehicle(r.Context(), id)
	if errors.Is(err, common.ErrNotFound) {
		respondError(w, http.StatusNotFound, "vehicle not found")
		return
	}
	if err != nil {
		common.LogError(err, "failed to delete vehicle", common.Fields{"id": id})
		respondError(w, http.StatusInternalServerError, "failed to delete vehicle")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// scoresResponse bundles every score the app computes for one vehicle.
type scoresResponse struct {
	Vehicle       *model.Vehicle         `json:"vehicle"`
	ValueScore    float64                `json:"value_score"`
	Environmental float64                `json:"environmental_score"`
	OwnershipCost *scoring.CostBreakdown `json:"ownership_cost"`
}

func (h *Handler) handleScores(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	vehicle, err := h.store.GetVehicle(r.Context(), id)
	if errors.Is(err, common.ErrNotFound) {
		respondError(w, http.StatusNotFound, "vehicle not found")
		return
	}
	if err != nil {
		common.LogError(err, "failed to get vehicle", common.Fields{"id": id})
		respondError(w, http.StatusInternalServerError, "failed to get vehicle")
		return
	}

	respondJSON(w, http.StatusOK, scoresResponse{
		Vehicle:       vehicle,
		ValueScore:    scoring.Value(vehicle),
		Environmental: scoring.Environmental(vehicle),
		OwnershipCost: scoring.OwnershipCost(vehicle),
	})
}

func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	leftID := query.Get("left")
	rightID := query.Get("right")
	if leftID == "" || rightID == "" {
		respondError(w, http.StatusBadRequest, "left and right vehicle IDs are required")
		return
	}

	left, err := h.store.GetVehicle(r.Context(), leftID)
	if errors.Is(err, common.ErrNotFound) {
		respondError(w, http.StatusNotFound, "left vehicle not found")
		return
	}
	if err != nil {
		common.LogError(err, "failed to get vehicle", common.Fields{"id": leftID})
		respondError(w, http.StatusInternalServerError, "failed to get vehicle")
		return
	}

	right, err := h.store.GetVehicle(r.Context(), rightID)
	if errors.Is(err, common.ErrNotFound) {
		respondError(w, http.StatusNotFound, "right vehicle not found")
		return
	}
	if err != nil {
		common.LogError(err, "failed to get vehicle", common.Fields{"id": rightID})
		respondError(w, http.StatusInternalServerError, "failed to get vehicle")
		return
	}

	comparison := compare.Vehicles(left, right)
	if comparison == nil {
		respondError(w, http.StatusUnprocessableEntity, "comparison could not be built")
		return
	}
	respondJSON(w, http.StatusOK, comparison)
}
