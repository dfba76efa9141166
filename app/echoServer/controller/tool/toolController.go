package tool

import (
	"log/slog"
	"net/http"

	ts "github.com/KIKE335/tool-management-backend/service/tool"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc ts.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /tools
func (h *Controller) Create(c echo.Context) error {
	var req CreateToolReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.Create(c.Request().Context(), ts.CreateInput{
		Name:                   req.Name,
		ModelNumber:            req.ModelNumber,
		Type:                   req.Type,
		StorageLocation:        req.StorageLocation,
		Status:                 req.Status,
		PurchaseDate:           req.PurchaseDate,
		PurchasePrice:          req.PurchasePrice,
		RecommendedReplacement: req.RecommendedReplacement,
		Remarks:                req.Remarks,
		ImageURL:               req.ImageURL,
	})
	if err != nil {
		return h.fail(c, "tool create", err)
	}
	return c.JSON(http.StatusCreated, out)
}

// GET /tools
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return h.fail(c, "tool list", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// PUT /tools/:id/status
func (h *Controller) UpdateStatus(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	out, err := h.Svc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return h.fail(c, "status update", err)
	}
	return c.JSON(http.StatusOK, out)
}

// fail maps service error codes to HTTP statuses.
func (h *Controller) fail(c echo.Context, op string, err error) error {
	code := ts.Code(err)
	if code != ts.ErrValidation && code != ts.ErrNotFound {
		h.Log.Error(op, "err", err)
	}
	switch code {
	case ts.ErrValidation:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error(), "code": code})
	case ts.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "tool not found", "code": code})
	case ts.ErrSchema:
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "sheet schema mismatch", "code": code})
	case ts.ErrStore:
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "sheet unavailable", "code": code})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}
