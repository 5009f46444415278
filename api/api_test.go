package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type APISuite struct {
	suite.Suite
	api http.Handler
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

// New registers prometheus collectors on the default registry, so the
// suite builds the API exactly once.
func (s *APISuite) SetupSuite() {
	s.api = New()
}

func (s *APISuite) request(method, target string) (*httptest.ResponseRecorder, *Envelope) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.api.ServeHTTP(rec, req)

	envelope := new(Envelope)
	if err := json.Unmarshal(rec.Body.Bytes(), envelope); err != nil {
		return rec, nil
	}
	return rec, envelope
}

func (s *APISuite) TestHealth() {
	rec, _ := s.request(http.MethodGet, "/health")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *APISuite) TestUnknownRoute() {
	rec, envelope := s.request(http.MethodGet, "/nope")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Require().NotNil(envelope)
	s.False(envelope.Success)
	s.Equal(http.StatusNotFound, envelope.Error)
	s.Equal("resource not found", envelope.Message)
}

func (s *APISuite) TestMethodNotAllowed() {
	rec, envelope := s.request(http.MethodPut, "/questions")
	s.Equal(http.StatusMethodNotAllowed, rec.Code)
	s.Require().NotNil(envelope)
	s.False(envelope.Success)
	s.Equal("method not allowed", envelope.Message)
}

func (s *APISuite) TestProtectedRouteWithoutToken() {
	rec, envelope := s.request(http.MethodGet, "/drinks-detail")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Require().NotNil(envelope)
	s.False(envelope.Success)
	s.Equal("Authorization header is expected.", envelope.Message)
}

func (s *APISuite) TestMetricsExposed() {
	rec, _ := s.request(http.MethodGet, "/metrics")
	s.Equal(http.StatusOK, rec.Code)
}
