package question

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stagehand-cloud/stagehand/api/rest/service/question"
)

// postRequest is the dual-purpose POST /questions body: a present
// searchTerm field selects search, otherwise the embedded create
// payload applies.
type postRequest struct {
	SearchTerm *string `json:"searchTerm"`
	question.CreateRequest
}

func Post(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
	}

	if req.SearchTerm != nil {
		return search(c, *req.SearchTerm)
	}

	return create(c, &req.CreateRequest)
}

func search(c echo.Context, term string) error {
	resp, err := question.New(c.Request().Context()).Search(term)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":          true,
		"questions":        resp.Questions,
		"total_questions":  resp.TotalQuestions,
		"current_category": nil,
	})
}

func create(c echo.Context, req *question.CreateRequest) error {
	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := question.New(c.Request().Context()).Create(req, parsePage(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":         true,
		"created":         resp.Created,
		"questions":       resp.Questions,
		"total_questions": resp.TotalQuestions,
	})
}
