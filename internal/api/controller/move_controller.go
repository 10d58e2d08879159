package controller

import (
	"errors"
	"net/http"

	"ctchen222/tictactoe/internal/api/response"
	"ctchen222/tictactoe/internal/api/service"
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/pkg/proto"

	"github.com/gin-gonic/gin"
)

// MoveController handles the move advisor endpoints.
type MoveController struct {
	moveService service.MoveService
}

// NewMoveController creates a new MoveController.
func NewMoveController(moveService service.MoveService) *MoveController {
	return &MoveController{
		moveService: moveService,
	}
}

// NextMove handles POST /api/v1/move.
func (mc *MoveController) NextMove(c *gin.Context) {
	var req proto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := mc.moveService.NextMove(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	response.SuccessResponse(c, resp)
}

// Difficulties handles GET /api/v1/difficulties.
func (mc *MoveController) Difficulties(c *gin.Context) {
	response.SuccessResponse(c, gin.H{"list": mc.moveService.Difficulties(c.Request.Context())})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidPosition),
		errors.Is(err, game.ErrInvalidBoard),
		errors.Is(err, game.ErrInvalidMark),
		errors.Is(err, bot.ErrUnknownDifficulty):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
