package handlers

import (
	"net/http"
	"time"

	"github.com/Sandee004/Voterz/internal/models"
	"github.com/Sandee004/Voterz/internal/services"

	"github.com/gin-gonic/gin"
)

type ElectionHandler struct {
	electionService *services.ElectionService
	authService     *services.AuthService
}

func NewElectionHandler(electionService *services.ElectionService, authService *services.AuthService) *ElectionHandler {
	return &ElectionHandler{electionService: electionService, authService: authService}
}

type CreateElectionRequest struct {
	Title     string `json:"title" binding:"required" example:"Student Union 2025"`
	StartDate string `json:"startDate" binding:"required" example:"2025-01-01"`
	EndDate   string `json:"endDate" binding:"required" example:"2025-01-31"`
}

type CreateElectionResponse struct {
	Message string `json:"message" example:"Election created successfully"`
	ID      string `json:"id" example:"pZ3kQx1"`
}

type ElectionSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsBuilt   bool      `json:"is_built"`
	OrgName   string    `json:"orgname"`
	Status    string    `json:"status"`
}

type ElectionDetail struct {
	ElectionSummary
	Questions      []QuestionView `json:"questions"`
	QuestionsCount int            `json:"questions_count"`
}

// ElectionInfo is the nested election object used by the preview and
// live views.
type ElectionInfo struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Status    string         `json:"status"`
	Questions []QuestionView `json:"questions"`
}

type LiveResponse struct {
	OrgName  string       `json:"orgname"`
	Election ElectionInfo `json:"election"`
}

type PreviewResponse struct {
	ID       uint         `json:"id"`
	OrgName  string       `json:"orgname"`
	Election ElectionInfo `json:"election"`
}

func electionSummary(e *models.Election, orgName string, now time.Time) ElectionSummary {
	return ElectionSummary{
		ID:        e.ID,
		Title:     e.Title,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		IsBuilt:   e.IsBuilt,
		OrgName:   orgName,
		Status:    services.ElectionStatus(e, now),
	}
}

// CreateElection godoc
// @Summary      Create an election
// @Description  Dates are date-only and interpreted as UTC midnight
// @Tags         elections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateElectionRequest true "Election data"
// @Success      201 {object} CreateElectionResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/election [post]
func (h *ElectionHandler) CreateElection(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateElectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "fill all fields"})
		return
	}

	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "startDate must be YYYY-MM-DD"})
		return
	}
	endDate, err := time.ParseInLocation("2006-01-02", req.EndDate, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "endDate must be YYYY-MM-DD"})
		return
	}

	election, err := h.electionService.Create(userID, req.Title, startDate, endDate)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateElectionResponse{
		Message: "Election created successfully",
		ID:      election.ID,
	})
}

// GetElection godoc
// @Summary      Get one election or list all owned elections
// @Description  With ?id= returns full detail including questions; without it, lists the caller's elections
// @Tags         elections
// @Produce      json
// @Security     BearerAuth
// @Param        id query string false "Election ID"
// @Success      200 {object} ElectionDetail
// @Failure      404 {object} ErrorResponse
// @Router       /api/election [get]
func (h *ElectionHandler) GetElection(c *gin.Context) {
	userID := c.GetUint("user_id")

	user, err := h.authService.GetUser(userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	now := time.Now()

	if electionID := c.Query("id"); electionID != "" {
		election, err := h.electionService.GetOwned(electionID, userID)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, ElectionDetail{
			ElectionSummary: electionSummary(election, user.OrgName, now),
			Questions:       questionViews(election.Questions),
			QuestionsCount:  len(election.Questions),
		})
		return
	}

	elections, err := h.electionService.ListByOwner(userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	summaries := make([]ElectionSummary, 0, len(elections))
	for i := range elections {
		summaries = append(summaries, electionSummary(&elections[i], user.OrgName, now))
	}
	c.JSON(http.StatusOK, summaries)
}

// Preview godoc
// @Summary      Preview an election as its owner
// @Description  Rejected once the election has ended
// @Tags         elections
// @Produce      json
// @Security     BearerAuth
// @Param        electionId query string true "Election ID"
// @Success      200 {object} PreviewResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/preview [get]
func (h *ElectionHandler) Preview(c *gin.Context) {
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

	election, err := h.electionService.GetOwned(electionID, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	status := services.ElectionStatus(election, time.Now())
	if status == services.StatusEnded {
		abortWithError(c, services.ErrEnded)
		return
	}

	c.JSON(http.StatusOK, PreviewResponse{
		ID:      user.ID,
		OrgName: user.OrgName,
		Election: ElectionInfo{
			ID:        election.ID,
			Title:     election.Title,
			Status:    status,
			Questions: questionViews(election.Questions),
		},
	})
}

// Live godoc
// @Summary      Public view of an election for voters
// @Description  No authentication and no ownership check; this renders the voting page
// @Tags         elections
// @Produce      json
// @Param        electionId query string true "Election ID"
// @Success      200 {object} LiveResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/live [get]
func (h *ElectionHandler) Live(c *gin.Context) {
	electionID := c.Query("electionId")
	if electionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Election ID is required"})
		return
	}

	election, err := h.electionService.GetPublic(electionID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, LiveResponse{
		OrgName: election.User.OrgName,
		Election: ElectionInfo{
			ID:        election.ID,
			Title:     election.Title,
			Status:    services.ElectionStatus(election, time.Now()),
			Questions: questionViews(election.Questions),
		},
	})
}

// Build godoc
// @Summary      Build an election
// @Description  One-way transition; a built election becomes eligible to go Ongoing
// @Tags         elections
// @Produce      json
// @Security     BearerAuth
// @Param        electionId query string true "Election ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/build [post]
func (h *ElectionHandler) Build(c *gin.Context) {
	userID := c.GetUint("user_id")

	electionID := c.Query("electionId")
	if electionID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Election ID is required"})
		return
	}

	if err := h.electionService.Build(electionID, userID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Election built successfully"})
}
