package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/agrisense/agrisense/internal/service"
	"github.com/agrisense/agrisense/pkg/httpx"
	"github.com/agrisense/agrisense/pkg/slogx"
)

// RecordsHandler serves the record books. All nine record types share the
// same add/update/soft-delete shape, so the endpoints are generated from a
// route table rather than written out endpoint by endpoint.
type RecordsHandler struct {
	RecordService *service.RecordService
}

type recordRoute struct {
	path   string
	add    http.HandlerFunc
	update http.HandlerFunc
	del    http.HandlerFunc
}

func (h *RecordsHandler) routes() []recordRoute {
	s := h.RecordService
	return []recordRoute{
		recordEndpoints("scouting-records", "Scouting", s.AddScouting, s.UpdateScouting, s.DeleteScouting),
		recordEndpoints("irrigation-records", "Irrigation", s.AddIrrigation, s.UpdateIrrigation, s.DeleteIrrigation),
		recordEndpoints("planting-records", "Planting", s.AddPlanting, s.UpdatePlanting, s.DeletePlanting),
		recordEndpoints("harvest-records", "Harvest", s.AddHarvest, s.UpdateHarvest, s.DeleteHarvest),
		recordEndpoints("fertilizer-records", "Fertilizer", s.AddFertilizer, s.UpdateFertilizer, s.DeleteFertilizer),
		recordEndpoints("coldroom", "Cold Room", s.AddColdRoom, s.UpdateColdRoom, s.DeleteColdRoom),
		recordEndpoints("employees", "Employee", s.AddEmployee, s.UpdateEmployee, s.DeleteEmployee),
		recordEndpoints("trainings", "Training", s.AddTraining, s.UpdateTraining, s.DeleteTraining),
		recordEndpoints("accidents", "Accident", s.AddAccident, s.UpdateAccident, s.DeleteAccident),
	}
}

func recordEndpoints[T any](
	path, label string,
	add func(context.Context, T) (T, error),
	update func(context.Context, uuid.UUID, T) error,
	del func(context.Context, uuid.UUID) error,
) recordRoute {
	return recordRoute{
		path:   path,
		add:    addRecord(label, add),
		update: updateRecord(label, update),
		del:    deleteRecord(label, del),
	}
}

func addRecord[T any](label string, add func(context.Context, T) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec T
		if err := httpx.DecodeJSON(r, &rec); err != nil {
			httpx.WriteError(w, r, http.StatusBadRequest, "Invalid JSON format")
			return
		}

		if _, err := add(r.Context(), rec); err != nil {
			if errors.Is(err, service.ErrFarmNotFound) {
				httpx.WriteError(w, r, http.StatusNotFound, "Farm not found")
				return
			}
			slogx.FromContext(r.Context()).Error("add record", "type", label, "error", err)
			httpx.WriteError(w, r, http.StatusBadRequest, "Could not add record")
			return
		}

		httpx.WriteJSON(w, r, http.StatusCreated,
			httpx.MessageResponse{Message: label + " record added successfully"})
	}
}

func updateRecord[T any](label string, update func(context.Context, uuid.UUID, T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			httpx.WriteError(w, r, http.StatusNotFound, "Record not found")
			return
		}

		var rec T
		if err := httpx.DecodeJSON(r, &rec); err != nil {
			httpx.WriteError(w, r, http.StatusBadRequest, "Invalid JSON format")
			return
		}

		if err := update(r.Context(), id, rec); err != nil {
			if errors.Is(err, service.ErrRecordNotFound) {
				httpx.WriteError(w, r, http.StatusNotFound, "Record not found")
				return
			}
			slogx.FromContext(r.Context()).Error("update record", "type", label, "error", err)
			httpx.WriteError(w, r, http.StatusBadRequest, "Could not update record")
			return
		}

		httpx.WriteJSON(w, r, http.StatusOK,
			httpx.MessageResponse{Message: label + " record updated successfully"})
	}
}

func deleteRecord(label string, del func(context.Context, uuid.UUID) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			httpx.WriteError(w, r, http.StatusNotFound, "Record not found")
			return
		}

		if err := del(r.Context(), id); err != nil {
			if errors.Is(err, service.ErrRecordNotFound) {
				httpx.WriteError(w, r, http.StatusNotFound, "Record not found")
				return
			}
			slogx.FromContext(r.Context()).Error("delete record", "type", label, "error", err)
			httpx.WriteError(w, r, http.StatusBadRequest, "Could not delete record")
			return
		}

		httpx.WriteJSON(w, r, http.StatusOK,
			httpx.MessageResponse{Message: label + " record marked as deleted"})
	}
}
