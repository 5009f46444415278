package drink

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stagehand-cloud/stagehand/api/rest/service/drink"
)

// List is the public menu with the short drink representation.
func List(c echo.Context) error {
	drinks, err := drink.New(c.Request().Context()).List()
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	}
	if len(drinks) == 0 {
		return echo.ErrNotFound
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"drinks":  drinks,
	})
}
