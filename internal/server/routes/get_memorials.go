package routes

import (
	"errors"
	"net/http"

	"github.com/everkept/memoria/backend/internal/server/middleware"
	"github.com/everkept/memoria/backend/pkg/common"
	"github.com/everkept/memoria/backend/pkg/store"

	"github.com/labstack/echo/v4"
)

// GetMemorialHandler returns a single memorial by id
func GetMemorialHandler(c echo.Context) error {
	type getMemorialResponse struct {
		Message  string           `json:"message"`
		Memorial *common.Memorial `json:"memorial,omitempty"`
	}

	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, getMemorialResponse{
			Message: "Missing memorial id",
		})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	memorial, err := st.GetMemorial(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, getMemorialResponse{
				Message: "Memorial not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, getMemorialResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getMemorialResponse{
		Message:  "Memorial retrieved successfully",
		Memorial: memorial,
	})
}
