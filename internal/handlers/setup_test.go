package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sandee004/Voterz/internal/middleware"
	"github.com/Sandee004/Voterz/internal/models"
	"github.com/Sandee004/Voterz/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter builds the same route table main registers, backed by
// an in-memory sqlite database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Election{},
		&models.Question{},
		&models.Option{},
		&models.Response{},
	))

	authService := services.NewAuthService(db, "test-secret")
	electionService := services.NewElectionService(db)
	questionService := services.NewQuestionService(db)
	ballotService := services.NewBallotService(db)
	resultsService := services.NewResultsService(db)

	authHandler := NewAuthHandler(authService)
	electionHandler := NewElectionHandler(electionService, authService)
	questionHandler := NewQuestionHandler(questionService)
	ballotHandler := NewBallotHandler(ballotService)
	resultsHandler := NewResultsHandler(resultsService, authService)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)
		api.GET("/live", electionHandler.Live)
		api.POST("/submit_ballot", ballotHandler.SubmitBallot)

		owner := api.Group("")
		owner.Use(middleware.JWTAuth(authService))
		{
			owner.POST("/election", electionHandler.CreateElection)
			owner.GET("/election", electionHandler.GetElection)
			owner.POST("/questions", questionHandler.CreateQuestions)
			owner.GET("/questions", questionHandler.ListQuestions)
			owner.GET("/preview", electionHandler.Preview)
			owner.GET("/results", resultsHandler.GetResults)
			owner.POST("/build", electionHandler.Build)
		}
	}
	return r
}

type testRequest struct {
	method string
	path   string
	body   interface{}
	token  string
	ip     string
}

func doRequest(t *testing.T, r *gin.Engine, req testRequest) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if req.body != nil {
		data, err := json.Marshal(req.body)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	httpReq := httptest.NewRequest(req.method, req.path, body)
	httpReq.Header.Set("Content-Type", "application/json")
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}
	if req.ip != "" {
		httpReq.RemoteAddr = req.ip + ":54321"
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func signupAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := doRequest(t, r, testRequest{method: http.MethodPost, path: "/api/signup", body: gin.H{
		"username": "tester",
		"email":    email,
		"password": "password123",
		"type":     "school",
		"orgname":  "Test Org",
	}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, r, testRequest{method: http.MethodPost, path: "/api/login", body: gin.H{
		"email":    email,
		"password": "password123",
	}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp LoginResponse
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func createElection(t *testing.T, r *gin.Engine, token, start, end string) string {
	t.Helper()

	w := doRequest(t, r, testRequest{method: http.MethodPost, path: "/api/election", token: token, body: gin.H{
		"title":     "Test Election",
		"startDate": start,
		"endDate":   end,
	}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp CreateElectionResponse
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.ID)
	return resp.ID
}
