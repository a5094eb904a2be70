package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/everkept/memoria/backend/internal/server/middleware"
	"github.com/everkept/memoria/backend/pkg/store"
	"github.com/everkept/memoria/backend/pkg/tree"

	"github.com/labstack/echo/v4"
)

// GetFamilyTreeHandler loads the family neighborhood around a memorial,
// walks up to the hierarchy root and returns the rendered tree.
func GetFamilyTreeHandler(c echo.Context) error {
	type getFamilyTreeResponse struct {
		Message string     `json:"message"`
		Tree    *tree.Node `json:"tree,omitempty"`
	}

	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, getFamilyTreeResponse{
			Message: "Missing memorial id",
		})
	}

	depth := 0
	if raw := c.QueryParam("depth"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, getFamilyTreeResponse{
				Message: "Invalid depth parameter",
			})
		}
		depth = parsed
	}

	ctx := c.Request().Context()
	loader := c.(*middleware.AppContext).App.Loader

	loaded, err := loader.Load(ctx, id, depth)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, getFamilyTreeResponse{
				Message: "Memorial not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, getFamilyTreeResponse{
			Message: "Internal server error",
		})
	}

	root := tree.FindRoot(id, loaded)
	node := tree.Build(root, loaded)
	if node == nil {
		return c.JSON(http.StatusInternalServerError, getFamilyTreeResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getFamilyTreeResponse{
		Message: "Family tree retrieved successfully",
		Tree:    node,
	})
}
