package handlers

import (
	"net/http"

	"github.com/Sandee004/Voterz/internal/services"

	"github.com/gin-gonic/gin"
)

type BallotHandler struct {
	ballotService *services.BallotService
}

func NewBallotHandler(ballotService *services.BallotService) *BallotHandler {
	return &BallotHandler{ballotService: ballotService}
}

type SubmitBallotRequest struct {
	ElectionID string                 `json:"election_id"`
	Responses  []services.AnswerInput `json:"responses"`
}

// SubmitBallot godoc
// @Summary      Submit an anonymous ballot
// @Description  The voter is identified by source IP; one ballot per IP per election
// @Tags         ballots
// @Accept       json
// @Produce      json
// @Param        request body SubmitBallotRequest true "Ballot"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/submit_ballot [post]
func (h *BallotHandler) SubmitBallot(c *gin.Context) {
	var req SubmitBallotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid data"})
		return
	}

	if err := h.ballotService.Submit(req.ElectionID, c.ClientIP(), req.Responses); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "Ballot submitted successfully"})
}
