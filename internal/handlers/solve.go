package handlers

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jgardner8/NPuzzle/internal/search"
)

// SolveHandler serves the stateless solver endpoints; nothing here touches
// the database.
type SolveHandler struct {
	log *logrus.Logger
}

func NewSolveHandler(log *logrus.Logger) *SolveHandler {
	return &SolveHandler{log: log}
}

func (h *SolveHandler) Strategies(w http.ResponseWriter, r *http.Request) {
	strategies := search.Strategies()
	dtos := make([]StrategyDTO, 0, len(strategies))
	for _, s := range strategies {
		dtos = append(dtos, StrategyDTO{
			Code:    s.Code,
			Name:    s.Name,
			Optimal: s.Optimal,
		})
	}
	sendJSONOrLog(w, h.log, dtos)
}

func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseSolveRequestDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}
	initial, goal, err := dto.States()
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}
	strategy, err := search.ByCode(dto.Strategy)
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"strategy": strategy.Code,
		"initial":  dto.Initial,
		"goal":     dto.Goal,
	}).Info("solve request")

	start := time.Now()
	result := search.Search(initial, goal, strategy.NewFrontier(goal))
	sendJSONOrLog(w, h.log, NewSolutionDTO(strategy, result, time.Since(start)))
}
