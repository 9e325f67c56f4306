package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carwise/carwise/internal/model"
	"github.com/carwise/carwise/internal/storage"
)

func newTestServer(t *testing.T) (*httptest.Server, *storage.SQLiteStorage) {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	r := mux.NewRouter()
	NewHandler(store).RegisterRoutes(r)
	ts := httptest.NewServer(r)

	t.Cleanup(func() {
		ts.Close()
		_ = store.Close()
	})
	return ts, store
}

func seedVehicle(t *testing.T, store *storage.SQLiteStorage, id string, mutate func(*model.Vehicle)) *model.Vehicle {
	t.Helper()

	v := &model.Vehicle{
		ID:        id,
		Make:      "Toyota",
		Model:     "Camry",
		Year:      2022,
		Price:     20000,
		Condition: model.ConditionUsed,
		Mileage:   10000,
		Type:      "Hybrid",
		Category:  "Sedan",
		Features:  []string{"backup_camera", "bluetooth"},
	}
	if mutate != nil {
		mutate(v)
	}
	require.NoError(t, store.SaveVehicle(context.Background(), v))
	return v
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHandleHealth(t *testing.T) {
	ts, _ := newTestServer(t)

	var body map[string]string
	status := getJSON(t, ts.URL+"/health", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestHandleListVehicles(t *testing.T) {
	ts, store := newTestServer(t)

	var empty []model.Vehicle
	status := getJSON(t, ts.URL+"/vehicles", &empty)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, empty)

	seedVehicle(t, store, "veh-1", nil)
	seedVehicle(t, store, "veh-2", func(v *model.Vehicle) {
		v.Make = "Ford"
		v.Category = "Truck"
	})

	var all []model.Vehicle
	status = getJSON(t, ts.URL+"/vehicles", &all)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, all, 2)

	var trucks []model.Vehicle
	status = getJSON(t, ts.URL+"/vehicles?category=Truck", &trucks)
	assert.Equal(t, http.StatusOK, status)
	require.Len(t, trucks, 1)
	assert.Equal(t, "veh-2", trucks[0].ID)
}

func TestHandleListVehicles_Limit(t *testing.T) {
	ts, store := newTestServer(t)
	seedVehicle(t, store, "veh-1", nil)
	seedVehicle(t, store, "veh-2", func(v *model.Vehicle) { v.Year = 2020 })

	var limited []model.Vehicle
	status := getJSON(t, ts.URL+"/vehicles?limit=1", &limited)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, limited, 1)

	for _, raw := range []string{"abc", "-1", "1.5"} {
		status = getJSON(t, ts.URL+"/vehicles?limit="+raw, nil)
		assert.Equal(t, http.StatusBadRequest, status, "limit %q", raw)
	}
}

func TestHandleSaveVehicle(t *testing.T) {
	ts, store := newTestServer(t)

	payload := `{"id": "veh-9", "make": "Honda", "model": "Civic", "year": 2023, "price": 25000}`
	resp, err := http.Post(ts.URL+"/vehicles", "application/json", bytes.NewBufferString(payload))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	saved, err := store.GetVehicle(context.Background(), "veh-9")
	require.NoError(t, err)
	assert.Equal(t, "Civic", saved.Model)
}

func TestHandleSaveVehicle_BadPayload(t *testing.T) {
	ts, _ := newTestServer(t)

	for _, payload := range []string{`not json`, `{"id": "x"}`} {
		resp, err := http.Post(ts.URL+"/vehicles", "application/json", bytes.NewBufferString(payload))
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "payload %q", payload)
	}
}

func TestHandleGetVehicle(t *testing.T) {
	ts, store := newTestServer(t)
	seedVehicle(t, store, "veh-1", nil)

	var v model.Vehicle
	status := getJSON(t, ts.URL+"/vehicles/veh-1", &v)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Camry", v.Model)

	status = getJSON(t, ts.URL+"/vehicles/missing", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHandleDeleteVehicle(t *testing.T) {
	ts, store := newTestServer(t)
	seedVehicle(t, store, "veh-1", nil)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/vehicles/veh-1", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleScores(t *testing.T) {
	ts, store := newTestServer(t)
	seedVehicle(t, store, "veh-1", nil)

	var scores struct {
		ValueScore    float64 `json:"value_score"`
		Environmental float64 `json:"environmental_score"`
		OwnershipCost struct {
			Total float64 `json:"total"`
		} `json:"ownership_cost"`
	}
	status := getJSON(t, ts.URL+"/vehicles/veh-1/scores", &scores)
	assert.Equal(t, http.StatusOK, status)
	assert.Greater(t, scores.ValueScore, 0.0)
	assert.Greater(t, scores.Environmental, 0.0)
	assert.Greater(t, scores.OwnershipCost.Total, 0.0)

	status = getJSON(t, ts.URL+"/vehicles/missing/scores", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHandleCompare(t *testing.T) {
	ts, store := newTestServer(t)
	seedVehicle(t, store, "veh-a", nil)
	seedVehicle(t, store, "veh-b", func(v *model.Vehicle) {
		v.Make = "Ford"
		v.Model = "Explorer"
		v.Year = 2020
		v.Price = 35000
		v.Mileage = 60000
		v.Type = "Benzine"
		v.Category = "SUV"
	})

	var comparison model.Comparison
	url := fmt.Sprintf("%s/compare?left=%s&right=%s", ts.URL, "veh-a", "veh-b")
	status := getJSON(t, url, &comparison)
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, comparison.Rows)
	assert.Equal(t, model.SideLeft, comparison.Recommended)

	status = getJSON(t, ts.URL+"/compare?left=veh-a", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status = getJSON(t, ts.URL+"/compare?left=veh-a&right=missing", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
