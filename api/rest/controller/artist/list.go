package artist

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stagehand-cloud/stagehand/api/rest/service/artist"
)

func List(c echo.Context) error {
	artists, err := artist.New(c.Request().Context()).List()
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"artists": artists,
	})
}
