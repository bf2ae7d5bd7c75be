package handlers

import (
	"errors"
	"net/http"

	"github.com/Sandee004/Voterz/internal/models"
	"github.com/Sandee004/Voterz/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// QuestionView is the wire shape of a question: options flattened to
// an ordered list of strings.
type QuestionView struct {
	ID           uint     `json:"id"`
	QuestionText string   `json:"question_text"`
	QuestionType string   `json:"question_type"`
	Options      []string `json:"options"`
}

func questionView(q *models.Question) QuestionView {
	return QuestionView{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		QuestionType: q.QuestionType,
		Options:      q.OptionTexts(),
	}
}

func questionViews(questions []models.Question) []QuestionView {
	views := make([]QuestionView, 0, len(questions))
	for i := range questions {
		views = append(views, questionView(&questions[i]))
	}
	return views
}

func statusForErr(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrEnded):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusForErr(err), ErrorResponse{Error: err.Error()})
}
