package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/config"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/model"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/repository"
	"github.com/petergabrielgreenberg/nyc-tennis-booking/internal/utils"
)

// SystemHandler bundles the repositories system administrators use to
// manage clubs, courts and operating hours.  Booking mutation is
// deliberately absent: that capability belongs to club admins only.
type SystemHandler struct {
	Cfg    config.Config
	Clubs  *repository.ClubRepo
	Courts *repository.CourtRepo
	Hours  *repository.HourRepo
}

func NewSystemHandler(cfg config.Config, clubs *repository.ClubRepo, courts *repository.CourtRepo, hours *repository.HourRepo) *SystemHandler {
	if clubs == nil || courts == nil || hours == nil {
		panic("nil repository passed to NewSystemHandler")
	}
	return &SystemHandler{Cfg: cfg, Clubs: clubs, Courts: courts, Hours: hours}
}

type clubReq struct {
	Name     string `json:"name"`
	Borough  string `json:"borough"`
	Password string `json:"password"` // shared club admin password (create only)
}

type clubResp struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Borough string `json:"borough"`
}

// CreateClub handles POST /v1/system/clubs.
func (h *SystemHandler) CreateClub(c echo.Context) error {
	var req clubReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if !model.ValidBorough(req.Borough) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid borough"})
	}
	if req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password is required"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash failed"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	club := &model.Club{Name: name, Borough: req.Borough, AdminHash: hash}
	if err := h.Clubs.Create(ctx, club); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create club failed"})
	}
	return c.JSON(http.StatusCreated, clubResp{ID: club.ID, Name: club.Name, Borough: club.Borough})
}

// ListClubs handles GET /v1/system/clubs, same ordering as the public
// directory.
func (h *SystemHandler) ListClubs(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	clubs, err := h.Clubs.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	model.SortClubs(clubs)

	items := make([]clubResp, 0, len(clubs))
	for _, cl := range clubs {
		items = append(items, clubResp{ID: cl.ID, Name: cl.Name, Borough: cl.Borough})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpdateClub handles PUT /v1/system/clubs/:id (name and borough).
func (h *SystemHandler) UpdateClub(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req clubReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if !model.ValidBorough(req.Borough) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid borough"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Clubs.UpdateInfo(ctx, id, name, req.Borough); err != nil {
		if errors.Is(err, repository.ErrClubNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "club not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, clubResp{ID: id, Name: name, Borough: req.Borough})
}

type clubPasswordReq struct {
	Password string `json:"password"`
}

// UpdateClubPassword handles PUT /v1/system/clubs/:id/password and
// rotates the shared club admin password.  Existing club admin tokens
// stay valid until they expire.
func (h *SystemHandler) UpdateClubPassword(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req clubPasswordReq
	if err := c.Bind(&req); err != nil || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password is required"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash failed"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Clubs.UpdateAdminHash(ctx, id, hash); err != nil {
		if errors.Is(err, repository.ErrClubNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "club not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "password updated"})
}
