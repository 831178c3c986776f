package web

import (
	"encoding/json"
	"net/http"

	"github.com/aeldan/cubescript/internal/lang/compiler"
	"github.com/aeldan/cubescript/internal/vm"
)

type RunRequest struct {
	Source string `json:"source"`
}

type RunResponse struct {
	Stack      []int  `json:"stack"`
	MemoryUsed int    `json:"memory_used"`
	Halted     bool   `json:"halted"`
	Error      string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, RunResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	prog, err := compiler.Compile(splitLines(req.Source))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, RunResponse{Error: err.Error()})
		return
	}

	result, err := vm.New().Run(prog)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, RunResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, RunResponse{
		Stack:      make([]int, result.StackDepth),
		MemoryUsed: result.MemoryUsed,
		Halted:     result.Halted,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func splitLines(source string) []string {
	var lines []string
	start := 0
	for i, r := range source {
		if r == '\n' {
			lines = append(lines, source[start:i])
			start = i + 1
		}
	}
	lines = append(lines, source[start:])
	return lines
}
