package artist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/stagehand-cloud/stagehand/api/rest/service/artist"
	"gorm.io/gorm"
)

func Put(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.ErrNotFound
	}

	var req artist.CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	a, err := artist.New(c.Request().Context()).Update(uint(id), &req)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.ErrNotFound
	case err != nil:
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"artist":  a,
	})
}
