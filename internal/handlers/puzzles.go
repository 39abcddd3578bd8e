package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/jgardner8/NPuzzle/internal/config"
	"github.com/jgardner8/NPuzzle/internal/puzzle"
	"github.com/jgardner8/NPuzzle/internal/repository"
	"github.com/jgardner8/NPuzzle/internal/search"
)

// PuzzleHandler serves the stored-puzzle endpoints: named puzzles, their
// solve records, and the websocket progress stream.
type PuzzleHandler struct {
	log  *logrus.Logger
	repo *repository.Queries
	ws   *config.WebSocket
}

func NewPuzzleHandler(
	log *logrus.Logger, db *pgxpool.Pool, ws *config.WebSocket,
) *PuzzleHandler {
	return &PuzzleHandler{
		log:  log,
		repo: repository.New(db),
		ws:   ws,
	}
}

func (h *PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreatePuzzleDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}
	// reject malformed grids before they reach storage
	solve := SolveRequestDTO{
		Width:   dto.Width,
		Height:  dto.Height,
		Initial: dto.Initial,
		Goal:    dto.Goal,
	}
	if _, _, err := solve.States(); err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	stored, err := h.repo.CreatePuzzle(r.Context(), repository.CreatePuzzleParams{
		Name:    dto.Name,
		Width:   dto.Width,
		Height:  dto.Height,
		Initial: dto.Initial,
		Goal:    dto.Goal,
	})
	if errors.Is(err, repository.ErrDuplicateName) {
		sendErrorOrLog(w, h.log, http.StatusConflict, err)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.Error("unable to insert puzzle: ", err)
		return
	}
	sendJSONOrLog(w, h.log, NewPuzzleDTO(stored))
}

func (h *PuzzleHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	stored, ok := h.fetch(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, h.log, NewPuzzleDTO(stored))
}

func (h *PuzzleHandler) Solve(w http.ResponseWriter, r *http.Request) {
	strategy, err := search.ByCode(r.URL.Query().Get("strategy"))
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}
	stored, ok := h.fetch(w, r)
	if !ok {
		return
	}
	initial, goal, err := storedStates(stored)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.Error("db returned an invalid puzzle: ", err)
		return
	}

	start := time.Now()
	result := search.Search(initial, goal, strategy.NewFrontier(goal))
	elapsed := time.Since(start)

	var solutionLength *int
	if result.Found {
		n := len(result.Actions)
		solutionLength = &n
	}
	err = h.repo.CreateSolveRecord(r.Context(), repository.CreateSolveRecordParams{
		PuzzleId:       stored.PuzzleId,
		Strategy:       strategy.Code,
		Expanded:       result.Expanded,
		SolutionLength: solutionLength,
		Found:          result.Found,
		DurationMs:     float64(elapsed) / float64(time.Millisecond),
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.Error("unable to record solve: ", err)
		return
	}

	sendJSONOrLog(w, h.log, NewSolutionDTO(strategy, result, elapsed))
}

func (h *PuzzleHandler) Records(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	filter := repository.SolveRecordFilter{PuzzleName: &name}
	if code := r.URL.Query().Get("strategy"); code != "" {
		strategy, err := search.ByCode(code)
		if err != nil {
			sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
			return
		}
		filter.Strategy = &strategy.Code
	}

	records, err := h.repo.ListSolveRecords(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.Error("unable to list solve records: ", err)
		return
	}
	sendJSONOrLog(w, h.log, records)
}

// Watch upgrades to a websocket. Every text message is a strategy code;
// the server answers with progress frames while that search runs and a
// result frame when it terminates.
func (h *PuzzleHandler) Watch(w http.ResponseWriter, r *http.Request) {
	stored, ok := h.fetch(w, r)
	if !ok {
		return
	}
	initial, goal, err := storedStates(stored)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.Error("db returned an invalid puzzle: ", err)
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("upgrade: ", err)
		return
	}
	defer c.Close()

	interval := config.ProgressInterval()
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				h.log.Warn("read: ", err)
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}
		strategy, err := search.ByCode(strings.TrimSpace(string(message)))
		if err != nil {
			if err := c.WriteJSON(map[string]string{"error": err.Error()}); err != nil {
				h.log.Error("write: ", err)
				return
			}
			continue
		}
		if err := h.stream(c, strategy, initial, goal, interval); err != nil {
			h.log.Error("write: ", err)
			return
		}
	}
}

func (h *PuzzleHandler) stream(
	c *websocket.Conn,
	strategy search.Strategy,
	initial, goal puzzle.State,
	interval int,
) error {
	start := time.Now()
	stepper := search.NewStepper(initial, goal, strategy.NewFrontier(goal))
	for {
		snap := stepper.Step()
		if snap.Done {
			result := search.Result{
				Expanded: snap.Expanded,
				Actions:  snap.Actions,
				Found:    snap.Found,
			}
			dto := NewSolutionDTO(strategy, result, time.Since(start))
			return c.WriteJSON(WatchFrameDTO{
				Type:         "result",
				Strategy:     strategy.Code,
				Expanded:     snap.Expanded,
				Depth:        snap.Depth,
				FrontierSize: snap.FrontierSize,
				Result:       &dto,
			})
		}
		if snap.Expanded%interval == 0 {
			err := c.WriteJSON(WatchFrameDTO{
				Type:         "progress",
				Strategy:     strategy.Code,
				Expanded:     snap.Expanded,
				Depth:        snap.Depth,
				FrontierSize: snap.FrontierSize,
			})
			if err != nil {
				return err
			}
		}
	}
}

func (h *PuzzleHandler) fetch(
	w http.ResponseWriter, r *http.Request,
) (*repository.Puzzle, bool) {
	stored, err := h.repo.FetchPuzzle(r.Context(), r.PathValue("name"))
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.Error("unable to fetch puzzle: ", err)
		return nil, false
	}
	return stored, true
}

func storedStates(p *repository.Puzzle) (initial, goal puzzle.State, err error) {
	dto := SolveRequestDTO{
		Width:   p.Width,
		Height:  p.Height,
		Initial: p.Initial,
		Goal:    p.Goal,
	}
	return dto.States()
}
