package handlers

import (
	"net/http"

	"github.com/Sandee004/Voterz/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// CreateQuestions godoc
// @Summary      Add questions to elections in one batch
// @Description  Every spec is validated and every referenced election ownership-checked before anything is inserted
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body []services.QuestionInput true "Question specs"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/questions [post]
func (h *QuestionHandler) CreateQuestions(c *gin.Context) {
	var inputs []services.QuestionInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid data format"})
		return
	}

	userID := c.GetUint("user_id")
	if err := h.questionService.BatchCreate(userID, inputs); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "Questions added successfully"})
}

// ListQuestions godoc
// @Summary      List the questions of an owned election
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        election_id query string true "Election ID"
// @Success      200 {array} QuestionView
// @Failure      404 {object} ErrorResponse
// @Router       /api/questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	electionID := c.Query("election_id")
	if electionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Election ID is required"})
		return
	}

	userID := c.GetUint("user_id")
	questions, err := h.questionService.ListByElection(electionID, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, questionViews(questions))
}
