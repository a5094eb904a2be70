package routes

import (
	"errors"
	"net/http"

	"github.com/everkept/memoria/backend/internal/server/middleware"
	"github.com/everkept/memoria/backend/pkg/common"
	"github.com/everkept/memoria/backend/pkg/store"

	"github.com/labstack/echo/v4"
)

// UpdateRelativesHandler replaces the relatives list of a memorial.
// Relationship labels are canonicalized before the list is stored.
func UpdateRelativesHandler(c echo.Context) error {
	type updateRelativesBody struct {
		Relatives []common.Relative `json:"relatives" validate:"required"`
		Version   int64             `json:"version" validate:"required"`
	}

	type updateRelativesResponse struct {
		Message  string           `json:"message"`
		Memorial *common.Memorial `json:"memorial,omitempty"`
	}

	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, updateRelativesResponse{
			Message: "Missing memorial id",
		})
	}

	data := new(updateRelativesBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateRelativesResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, updateRelativesResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	relatives := make([]common.Relative, len(data.Relatives))
	copy(relatives, data.Relatives)
	for i := range relatives {
		relatives[i].Relationship = app.Resolver.Canonical(relatives[i].Relationship)
	}

	if err := app.Store.UpdateRelatives(ctx, id, relatives, data.Version); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, updateRelativesResponse{
				Message: "Memorial not found",
			})
		}
		if errors.Is(err, store.ErrVersionConflict) {
			return c.JSON(http.StatusConflict, updateRelativesResponse{
				Message: "Memorial was modified concurrently, reload and retry",
			})
		}
		return c.JSON(http.StatusInternalServerError, updateRelativesResponse{
			Message: "Internal server error",
		})
	}

	memorial, err := app.Store.GetMemorial(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, updateRelativesResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, updateRelativesResponse{
		Message:  "Relatives updated successfully",
		Memorial: memorial,
	})
}
