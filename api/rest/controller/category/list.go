package category

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stagehand-cloud/stagehand/api/rest/service/category"
)

func List(c echo.Context) error {
	categories, err := category.New(c.Request().Context()).List()
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	}
	if len(categories) == 0 {
		return echo.ErrNotFound
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"categories": categories.Types(),
	})
}
