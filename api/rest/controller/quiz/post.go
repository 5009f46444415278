package quiz

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stagehand-cloud/stagehand/api/rest/service/quiz"
	"gorm.io/gorm"
)

// Post picks the next quiz question. A null question in the response
// means the round is over, which is a terminal state, not an error.
func Post(c echo.Context) error {
	var req quiz.NextRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
	}

	q, err := quiz.New(c.Request().Context()).Next(&req)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.ErrNotFound
	case err != nil:
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"question": q,
	})
}
