package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ctchen222/tictactoe/internal/api/service"
	"ctchen222/tictactoe/internal/api/service/mocks"
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/validator"
	"ctchen222/tictactoe/pkg/proto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MoveControllerSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *MoveControllerSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validator.RegisterGin())
}

func (s *MoveControllerSuite) SetupTest() {
	mc := NewMoveController(service.NewMoveService())
	s.router = gin.New()
	s.router.POST("/api/v1/move", mc.NextMove)
	s.router.GET("/api/v1/difficulties", mc.Difficulties)
}

func (s *MoveControllerSuite) post(body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/move", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)
	return w
}

func (s *MoveControllerSuite) TestNextMove() {
	w := s.post(`{"board":"XX__O____","mark":"O","difficulty":"impossible"}`)
	s.Require().Equal(http.StatusOK, w.Code)

	var got struct {
		Success bool               `json:"success"`
		Extras  proto.MoveResponse `json:"extras"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.True(got.Success)
	s.Equal(proto.MoveResponse{Index: 2, Row: 0, Col: 2, Rule: "block", Board: "XXO_O____"}, got.Extras)
}

func (s *MoveControllerSuite) TestNextMoveStatusCodes() {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "Malformed JSON", body: `{"board":`, want: http.StatusBadRequest},
		{name: "Missing difficulty", body: `{"board":"_________","mark":"X"}`, want: http.StatusBadRequest},
		{name: "Unknown difficulty", body: `{"board":"_________","mark":"X","difficulty":"Hard"}`, want: http.StatusBadRequest},
		{name: "Bad board", body: `{"board":"XX_","mark":"X","difficulty":"hard"}`, want: http.StatusBadRequest},
		{name: "Bad mark", body: `{"board":"_________","mark":"Z","difficulty":"hard"}`, want: http.StatusBadRequest},
		{name: "Impossible counts", body: `{"board":"XX_X_____","mark":"O","difficulty":"hard"}`, want: http.StatusBadRequest},
		{name: "Won board", body: `{"board":"XXXOO____","mark":"O","difficulty":"hard"}`, want: http.StatusConflict},
		{name: "Full board", body: `{"board":"XOXXOOOXX","mark":"O","difficulty":"hard"}`, want: http.StatusConflict},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.post(tt.body)
			s.Equal(tt.want, w.Code, w.Body.String())
			s.Contains(w.Body.String(), `"success":false`)
		})
	}
}

func (s *MoveControllerSuite) TestDifficulties() {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/difficulties", nil))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `{"name":"easy","threshold":20}`)
	s.Contains(w.Body.String(), `{"name":"impossible","threshold":100}`)
}

func TestMoveControllerSuite(t *testing.T) {
	suite.Run(t, new(MoveControllerSuite))
}

func TestNextMoveInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, validator.RegisterGin())

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockMoveService(ctrl)
	svc.EXPECT().NextMove(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: board _________", bot.ErrCascadeExhausted))

	router := gin.New()
	router.POST("/move", NewMoveController(svc).NextMove)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/move", strings.NewReader(`{"board":"_________","mark":"X","difficulty":"easy"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "cascade exhausted")
}
