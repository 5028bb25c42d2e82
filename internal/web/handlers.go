package web

import (
	"encoding/json"
	"net/http"

	"github.com/frederik-kofoed-marqversen/rubiks-cube/internal/cube"
)

// SolveRequest is the body of POST /api/solve. Scramble is a
// space-separated move sequence; an empty scramble solves the
// already-solved cube.
type SolveRequest struct {
	Scramble string `json:"scramble"`
}

type SolveResponse struct {
	Solution []string `json:"solution"`
	Moves    int      `json:"moves"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	moves, err := cube.ParseScramble(req.Scramble)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid scramble: "+err.Error())
		return
	}

	c := cube.New()
	c.TurnAll(moves)

	solution := cube.Solve(c, s.tables)

	names := make([]string, len(solution))
	for i, m := range solution {
		names[i] = m.String()
	}

	writeJSON(w, http.StatusOK, SolveResponse{Solution: names, Moves: len(names)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
