package handlers

import (
	"net/http"

	"github.com/Sandee004/Voterz/internal/services"

	"github.com/gin-gonic/gin"
)

type ResultsHandler struct {
	resultsService *services.ResultsService
	authService    *services.AuthService
}

func NewResultsHandler(resultsService *services.ResultsService, authService *services.AuthService) *ResultsHandler {
	return &ResultsHandler{resultsService: resultsService, authService: authService}
}

type ResultsResponse struct {
	ID       uint                     `json:"id"`
	OrgName  string                   `json:"orgname"`
	Election services.ElectionResults `json:"election"`
}

// GetResults godoc
// @Summary      Tally votes for an owned election
// @Description  Counts only answers matching a question's declared options; zero-vote options are absent from the map
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Param        electionId query string true "Election ID"
// @Success      200 {object} ResultsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/results [get]
func (h *ResultsHandler) GetResults(c *gin.Context) {
	userID := c.GetUint("user_id")

	user, err := h.authService.GetUser(userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	electionID := c.Query("electionId")
	if electionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Election ID is required"})
		return
	}

	results, err := h.resultsService.Tally(electionID, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ResultsResponse{
		ID:       user.ID,
		OrgName:  user.OrgName,
		Election: *results,
	})
}
