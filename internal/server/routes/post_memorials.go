package routes

import (
	"net/http"

	"github.com/everkept/memoria/backend/internal/server/middleware"
	"github.com/everkept/memoria/backend/internal/util"
	"github.com/everkept/memoria/backend/pkg/common"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// CreateMemorialHandler creates a new memorial record
func CreateMemorialHandler(c echo.Context) error {
	type createMemorialBody struct {
		Name      string `json:"name" validate:"required"`
		BirthDate string `json:"birth_date"`
		DeathDate string `json:"death_date"`
		PhotoURL  string `json:"photo_url"`
	}

	type createMemorialResponse struct {
		Message  string           `json:"message"`
		Memorial *common.Memorial `json:"memorial,omitempty"`
	}

	data := new(createMemorialBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createMemorialResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createMemorialResponse{
			Message: "Invalid request body",
		})
	}

	user := c.(*middleware.AppContext).User
	if user == nil {
		return c.JSON(http.StatusUnauthorized, createMemorialResponse{
			Message: "Unauthorized",
		})
	}

	ctx := c.Request().Context()
	st := c.(*middleware.AppContext).App.Store

	// Retried in case a generated identifier collides.
	memorial, err := util.Retry(3, func() (*common.Memorial, error) {
		id, err := gonanoid.New()
		if err != nil {
			return nil, err
		}
		m := &common.Memorial{
			ID:        id,
			Name:      data.Name,
			BirthDate: data.BirthDate,
			DeathDate: data.DeathDate,
			PhotoURL:  data.PhotoURL,
		}
		if err := st.CreateMemorial(ctx, m); err != nil {
			return nil, err
		}
		return m, nil
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, createMemorialResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, createMemorialResponse{
		Message:  "Memorial created successfully",
		Memorial: memorial,
	})
}
