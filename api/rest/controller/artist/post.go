package artist

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stagehand-cloud/stagehand/api/rest/service/artist"
)

func Post(c echo.Context) error {
	var req artist.CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	a, err := artist.New(c.Request().Context()).Create(&req)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"created": a.ID,
		"artist":  a,
	})
}
