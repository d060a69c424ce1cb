package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/model"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/repository"
)

type courtReq struct {
	Name    string `json:"name"`
	Surface string `json:"surface"`
}

// CreateCourt handles POST /v1/system/clubs/:id/courts.  The new court
// starts active with the default operating window already seeded, so it
// shows up on the grid immediately.
func (h *SystemHandler) CreateCourt(c echo.Context) error {
	clubID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req courtReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if !model.ValidSurface(req.Surface) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid surface"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Clubs.GetByID(ctx, clubID); err != nil {
		if errors.Is(err, repository.ErrClubNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "club not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	court := &model.Court{
		ClubID:  clubID,
		Name:    name,
		Surface: req.Surface,
		Status:  model.CourtActive,
	}
	if err := h.Courts.CreateWithDefaultHours(ctx, court); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create court failed"})
	}
	return c.JSON(http.StatusCreated, court)
}

// ListCourts handles GET /v1/system/clubs/:id/courts, inactive courts
// included.
func (h *SystemHandler) ListCourts(c echo.Context) error {
	clubID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Courts.ListByClub(ctx, clubID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpdateCourt handles PUT /v1/system/courts/:id (name and surface).
func (h *SystemHandler) UpdateCourt(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req courtReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if !model.ValidSurface(req.Surface) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid surface"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Courts.UpdateInfo(ctx, id, name, req.Surface); err != nil {
		if errors.Is(err, repository.ErrCourtNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "court not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.Courts.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, updated)
}

type courtStatusReq struct {
	Status string `json:"status"`
}

// UpdateCourtStatus handles PUT /v1/system/courts/:id/status.
// Deactivating a court pulls it off the availability grid; its bookings
// stay and keep blocking their slots for when it returns.
func (h *SystemHandler) UpdateCourtStatus(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req courtStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Status != model.CourtActive && req.Status != model.CourtInactive {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Courts.UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, repository.ErrCourtNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "court not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "status": req.Status})
}

// DeleteCourt handles DELETE /v1/system/courts/:id.  Hours and bookings
// go with the court in one transaction.
func (h *SystemHandler) DeleteCourt(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Courts.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCourtNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "court not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "court deleted"})
}
