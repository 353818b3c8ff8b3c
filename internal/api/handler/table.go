package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/kellypool/internal/api/request"
	"github.com/mcoot/kellypool/internal/api/response"
	"github.com/mcoot/kellypool/internal/model"
	"github.com/mcoot/kellypool/internal/services/table"
)

// TableHandler handles table and game command endpoints
type TableHandler struct {
	controller *table.Controller
	logger     *slog.Logger
}

// NewTableHandler creates a new table handler
func NewTableHandler(controller *table.Controller, logger *slog.Logger) *TableHandler {
	return &TableHandler{
		controller: controller,
		logger:     logger,
	}
}

func tableID(r *http.Request) model.TableID {
	return model.TableID(mux.Vars(r)["id"])
}

// writeResult writes a command result, or the rejection with its notifications
func (h *TableHandler) writeResult(w http.ResponseWriter, status int, result table.Result, err error) {
	if err != nil {
		WriteCommandError(w, err, result.Notifications)
		return
	}
	response.JSON(w, status, response.CommandResultFromModel(result.Game, result.Notifications, result.Foul))
}

// Create handles POST /api/v1/tables
func (h *TableHandler) Create(w http.ResponseWriter, r *http.Request) {
	g, err := h.controller.CreateTable(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.TableFromModel(g))
}

// List handles GET /api/v1/tables
func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.controller.ListTables(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TableListFromModel(ids))
}

// Get handles GET /api/v1/tables/{id}
func (h *TableHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.controller.GetTable(r.Context(), tableID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TableFromModel(g))
}

// Delete handles DELETE /api/v1/tables/{id}
func (h *TableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.DeleteTable(r.Context(), tableID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// History handles GET /api/v1/tables/{id}/history
func (h *TableHandler) History(w http.ResponseWriter, r *http.Request) {
	id := tableID(r)

	events, err := h.controller.History(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HistoryFromModel(id, events))
}

// AddPlayer handles POST /api/v1/tables/{id}/players
func (h *TableHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	result, err := h.controller.AddPlayer(r.Context(), tableID(r), req.Name)
	h.writeResult(w, http.StatusCreated, result, err)
}

// RemovePlayer handles DELETE /api/v1/tables/{id}/players/{player_id}
func (h *TableHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	result, err := h.controller.RemovePlayer(r.Context(), tableID(r), playerID)
	h.writeResult(w, http.StatusOK, result, err)
}

// Start handles POST /api/v1/tables/{id}/start
func (h *TableHandler) Start(w http.ResponseWriter, r *http.Request) {
	result, err := h.controller.StartGame(r.Context(), tableID(r))
	h.writeResult(w, http.StatusOK, result, err)
}

// Pocket handles POST /api/v1/tables/{id}/pocket
func (h *TableHandler) Pocket(w http.ResponseWriter, r *http.Request) {
	var req request.PocketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	result, err := h.controller.PocketBall(r.Context(), tableID(r), *req.Ball)
	if err == nil && result.Foul != nil {
		h.logger.Debug("foul",
			slog.String("table_id", string(tableID(r))),
			slog.Int("ball", *req.Ball),
		)
	}
	h.writeResult(w, http.StatusOK, result, err)
}

// Reset handles POST /api/v1/tables/{id}/reset
func (h *TableHandler) Reset(w http.ResponseWriter, r *http.Request) {
	result, err := h.controller.ResetGame(r.Context(), tableID(r))
	h.writeResult(w, http.StatusOK, result, err)
}
