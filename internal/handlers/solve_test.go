package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func solveRequest(params map[string]string) *http.Request {
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	return httptest.NewRequest(
		http.MethodPost, "/solve?"+query.Encode(), nil,
	)
}

func TestSolveEndpoint(t *testing.T) {
	h := NewSolveHandler(newTestLogger())
	w := httptest.NewRecorder()

	h.Solve(w, solveRequest(map[string]string{
		"width":    "2",
		"height":   "3",
		"initial":  "1 2 3 4 0 5",
		"goal":     "3 1 2 4 5 0",
		"strategy": "as",
	}))

	require.Equal(t, http.StatusOK, w.Code)
	var dto SolutionDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	assert.Equal(t, "AS", dto.Strategy)
	assert.True(t, dto.Found)
	assert.Len(t, dto.Moves, 7)
	assert.Positive(t, dto.Expanded)
	// solution string is the moves joined with trailing separators
	assert.Contains(t, dto.Solution, ";")
}

func TestSolveEndpointAlreadySolved(t *testing.T) {
	h := NewSolveHandler(newTestLogger())
	w := httptest.NewRecorder()

	h.Solve(w, solveRequest(map[string]string{
		"width":    "2",
		"height":   "2",
		"initial":  "1 2 3 0",
		"goal":     "1 2 3 0",
		"strategy": "BFS",
	}))

	require.Equal(t, http.StatusOK, w.Code)
	var dto SolutionDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	assert.True(t, dto.Found)
	assert.Empty(t, dto.Moves)
	assert.Zero(t, dto.Expanded)
}

func TestSolveEndpointRejectsBadRequests(t *testing.T) {
	h := NewSolveHandler(newTestLogger())

	for name, params := range map[string]map[string]string{
		"missing params": {"width": "2"},
		"unknown strategy": {
			"width": "2", "height": "3",
			"initial": "1 2 3 4 0 5", "goal": "3 1 2 4 5 0",
			"strategy": "IDDFS",
		},
		"malformed state": {
			"width": "2", "height": "3",
			"initial": "1 2 3", "goal": "3 1 2 4 5 0",
			"strategy": "AS",
		},
		// (-2)*(-3) matches the six labels, so the dimensions themselves
		// must be rejected, not just the label count
		"negative dimensions": {
			"width": "-2", "height": "-3",
			"initial": "1 2 3 4 0 5", "goal": "3 1 2 4 5 0",
			"strategy": "AS",
		},
		"zero dimensions": {
			"width": "0", "height": "0",
			"initial": "1 2 3 4 0 5", "goal": "3 1 2 4 5 0",
			"strategy": "AS",
		},
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Solve(w, solveRequest(params))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestStrategiesEndpoint(t *testing.T) {
	h := NewSolveHandler(newTestLogger())
	w := httptest.NewRecorder()

	h.Strategies(w, httptest.NewRequest(http.MethodGet, "/strategies", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var dtos []StrategyDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dtos))
	require.Len(t, dtos, 7)
	// alphabetical by code
	assert.Equal(t, "AS", dtos[0].Code)
	assert.True(t, dtos[0].Optimal)
}
