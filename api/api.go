package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stagehand-cloud/stagehand/api/rest/bind"
	"github.com/stagehand-cloud/stagehand/pkg/env"
	"github.com/stagehand-cloud/stagehand/pkg/log"
)

var e *echo.Echo

// Envelope is the uniform failure body returned by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// errorMessages are the default API error strings. Handlers may attach
// more specific messages (the auth middleware does), which pass
// through untouched.
var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusForbidden:           "forbidden",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

// New assembles the stagehand API.
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// health
	e.GET("/health", Health)

	// metrics
	e.Use(echoprometheus.NewMiddleware("stagehand"))
	e.GET("/metrics", echoprometheus.NewHandler())

	// REST
	bind.All(e.Group(""))

	return e
}

// Start launches stagehand's API.
func Start(ctx context.Context) error {
	e = New()
	return e.Start(fmt.Sprintf(":%v", env.Variables().Port))
}

// Shutdown drains the API listener.
func Shutdown() error {
	if e == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return e.Shutdown(ctx)
}

func errorHandler(err error, c echo.Context) {
	var (
		code = http.StatusInternalServerError
		msg  string
	)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	// echo's default errors carry the bare status text; swap those for
	// the API's own messages.
	if msg == "" || msg == http.StatusText(code) {
		if m, ok := errorMessages[code]; ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(code); err != nil {
			log.Error("error response failure", "error", err)
		}
		return
	}

	if err := c.JSON(code, Envelope{Success: false, Error: code, Message: msg}); err != nil {
		log.Error("error response failure", "error", err)
	}
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	}
	return nil
}
