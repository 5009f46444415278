package node

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stagehand-cloud/stagehand/api/rest/service/node"
)

func List(c echo.Context) error {
	resp, err := node.New(c.Request().Context()).List()
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"nodes":       resp.Nodes,
		"total_nodes": resp.TotalNodes,
	})
}
