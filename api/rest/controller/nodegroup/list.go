package nodegroup

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stagehand-cloud/stagehand/api/rest/service/nodegroup"
)

func List(c echo.Context) error {
	resp, err := nodegroup.New(c.Request().Context()).List()
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":          true,
		"nodegroups":       resp.NodeGroups,
		"total_nodegroups": resp.TotalNodeGroups,
	})
}
