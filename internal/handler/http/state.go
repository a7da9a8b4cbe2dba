package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oraculo-app/oraculo-sync/internal/logger"
	"github.com/oraculo-app/oraculo-sync/internal/service"
	"github.com/oraculo-app/oraculo-sync/internal/store"
	"github.com/oraculo-app/oraculo-sync/internal/utils"
	"github.com/oraculo-app/oraculo-sync/models"
)

// getState returns the authenticated user's state record.
//
// A user who has never uploaded a document gets 404; the client treats that
// as a normal empty-state outcome, not a failure.
func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	record, err := h.services.StateService.GetState(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrStateRecordNotFound):
			http.Error(w, "state record was not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("func", "*Handler.getState").Msg("error getting state record")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, models.StateResponse{
		Data:      record.Data,
		Version:   record.Version,
		UpdatedAt: record.UpdatedAt,
	}, http.StatusOK)
}

// upsertState replaces the authenticated user's state record with the
// document in the request body and echoes back the server-assigned
// timestamp.
func (h *Handler) upsertState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.StateUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.upsertState").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.BaseUpdatedAt != nil {
		// recorded for diagnostics only, the last write wins
		log.Debug().Time("base_updated_at", *req.BaseUpdatedAt).Msg("client read-before-write stamp")
	}

	updatedAt, err := h.services.StateService.UpsertState(ctx, models.RemoteRecord{
		UserID:  userID,
		Data:    req.Data,
		Version: req.Version,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("func", "*Handler.upsertState").Msg("error saving state record")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, models.StateUpsertResponse{UpdatedAt: updatedAt}, http.StatusOK)
}
