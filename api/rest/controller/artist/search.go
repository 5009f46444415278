package artist

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stagehand-cloud/stagehand/api/rest/service/artist"
)

type searchRequest struct {
	SearchTerm string `json:"search_term"`
}

func Search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
	}

	resp, err := artist.New(c.Request().Context()).Search(req.SearchTerm)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   resp.Count,
		"data":    resp.Data,
	})
}
