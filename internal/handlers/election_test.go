package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Dates far enough out that the suite does not rot.
func futureWindow() (string, string) {
	start := time.Now().UTC().AddDate(1, 0, 0)
	return start.Format("2006-01-02"), start.AddDate(0, 1, 0).Format("2006-01-02")
}

func pastWindow() (string, string) {
	end := time.Now().UTC().AddDate(-1, 0, 0)
	return end.AddDate(0, -1, 0).Format("2006-01-02"), end.Format("2006-01-02")
}

func currentWindow() (string, string) {
	now := time.Now().UTC()
	return now.AddDate(0, 0, -7).Format("2006-01-02"), now.AddDate(0, 0, 7).Format("2006-01-02")
}

func TestCreateAndGetElection(t *testing.T) {
	r := setupRouter(t)
	token := signupAndLogin(t, r, "owner@example.com")

	start, end := futureWindow()
	id := createElection(t, r, token, start, end)

	w := doRequest(t, r, testRequest{method: http.MethodGet, path: "/api/election?id=" + id, token: token})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var detail ElectionDetail
	decodeBody(t, w, &detail)
	assert.Equal(t, id, detail.ID)
	assert.Equal(t, "Test Election", detail.Title)
	assert.Equal(t, "Test Org", detail.OrgName)
	assert.Equal(t, "Upcoming", detail.Status)
	assert.False(t, detail.IsBuilt)
	assert.Zero(t, detail.QuestionsCount)
}

func TestCreateElectionRejectsBadDates(t *testing.T) {
	r := setupRouter(t)
	token := signupAndLogin(t, r, "owner@example.com")

	w := doRequest(t, r, testRequest{method: http.MethodPost, path: "/api/election", token: token, body: gin.H{
		"title": "Bad", "startDate": "01/01/2025", "endDate": "2025-01-31",
	}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListElections(t *testing.T) {
	r := setupRouter(t)
	token := signupAndLogin(t, r, "owner@example.com")

	start, end := futureWindow()
	createElection(t, r, token, start, end)
	createElection(t, r, token, start, end)

	w := doRequest(t, r, testRequest{method: http.MethodGet, path: "/api/election", token: token})
	require.Equal(t, http.StatusOK, w.Code)

	var list []ElectionSummary
	decodeBody(t, w, &list)
	assert.Len(t, list, 2)
}

func TestGetElectionHidesOtherOwners(t *testing.T) {
	r := setupRouter(t)
	owner := signupAndLogin(t, r, "owner@example.com")
	other := signupAndLogin(t, r, "other@example.com")

	start, end := futureWindow()
	id := createElection(t, r, owner, start, end)

	w := doRequest(t, r, testRequest{method: http.MethodGet, path: "/api/election?id=" + id, token: other})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuildTwice(t *testing.T) {
	r := setupRouter(t)
	token := signupAndLogin(t, r, "owner@example.com")

	start, end := currentWindow()
	id := createElection(t, r, token, start, end)

	w := doRequest(t, r, testRequest{method: http.MethodPost, path: "/api/build?electionId=" + id, token: token})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(t, r, testRequest{method: http.MethodPost, path: "/api/build?electionId=" + id, token: token})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Status flips to Ongoing once built inside the date window.
	w = doRequest(t, r, testRequest{method: http.MethodGet, path: "/api/election?id=" + id, token: token})
	var detail ElectionDetail
	decodeBody(t, w, &detail)
	assert.True(t, detail.IsBuilt)
	assert.Equal(t, "Ongoing", detail.Status)
}

func TestBuildMissingID(t *testing.T) {
	r := setupRouter(t)
	token := signupAndLogin(t, r, "owner@example.com")

	w := doRequest(t, r, testRequest{method: http.MethodPost, path: "/api/build", token: token})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreviewRejectsEndedElection(t *testing.T) {
	r := setupRouter(t)
	token := signupAndLogin(t, r, "owner@example.com")

	start, end := pastWindow()
	id := createElection(t, r, token, start, end)

	// Unbuilt elections never end, so preview works.
	w := doRequest(t, r, testRequest{method: http.MethodGet, path: "/api/preview?electionId=" + id, token: token})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	doRequest(t, r, testRequest{method: http.MethodPost, path: "/api/build?electionId=" + id, token: token})

	w = doRequest(t, r, testRequest{method: http.MethodGet, path: "/api/preview?electionId=" + id, token: token})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLiveIsPublic(t *testing.T) {
	r := setupRouter(t)
	token := signupAndLogin(t, r, "owner@example.com")

	start, end := currentWindow()
	id := createElection(t, r, token, start, end)

	w := doRequest(t, r, testRequest{method: http.MethodPost, path: "/api/questions", token: token, body: []gin.H{
		{"election_id": id, "question_text": "President?", "question_type": "single", "options": []string{"Ada", "Bola"}},
	}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// No token at all.
	w = doRequest(t, r, testRequest{method: http.MethodGet, path: "/api/live?electionId=" + id})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var live LiveResponse
	decodeBody(t, w, &live)
	assert.Equal(t, "Test Org", live.OrgName)
	assert.Equal(t, id, live.Election.ID)
	require.Len(t, live.Election.Questions, 1)
	assert.Equal(t, []string{"Ada", "Bola"}, live.Election.Questions[0].Options)
}

func TestLiveUnknownElection(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, testRequest{method: http.MethodGet, path: "/api/live?electionId=missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
