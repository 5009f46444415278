package question

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/stagehand-cloud/stagehand/api/rest/service/question"
)

func List(c echo.Context) error {
	page := parsePage(c)

	resp, err := question.New(c.Request().Context()).List(page)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	}
	if len(resp.Questions) == 0 || len(resp.Categories) == 0 {
		return echo.ErrNotFound
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":          true,
		"questions":        resp.Questions,
		"total_questions":  resp.TotalQuestions,
		"categories":       resp.Categories,
		"current_category": nil,
	})
}

// parsePage reads the 1-based page query parameter, defaulting to the
// first page on absence or garbage.
func parsePage(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
