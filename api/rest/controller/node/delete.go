package node

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/stagehand-cloud/stagehand/api/rest/service/node"
	"gorm.io/gorm"
)

func Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.ErrNotFound
	}

	resp, err := node.New(c.Request().Context()).Delete(uint(id))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.ErrNotFound
	case err != nil:
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"deleted":     resp.Deleted,
		"nodes":       resp.Nodes,
		"total_nodes": resp.TotalNodes,
	})
}
