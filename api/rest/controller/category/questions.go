package category

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/stagehand-cloud/stagehand/api/rest/service/question"
	"gorm.io/gorm"
)

// Questions lists every question filed under one category.
func Questions(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.ErrNotFound
	}

	resp, err := question.New(c.Request().Context()).ByCategory(uint(id))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.ErrNotFound
	case err != nil:
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":          true,
		"questions":        resp.Questions,
		"total_questions":  resp.TotalQuestions,
		"current_category": resp.CurrentCategory,
	})
}
