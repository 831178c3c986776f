package web

import (
	"net/http"

	"github.com/aeldan/cubescript/internal/lang/compiler"
	"github.com/aeldan/cubescript/internal/vm"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// TraceEvent mirrors vm.Event over the wire, plus a terminal "done"
// message once the run finishes (successfully or not).
type TraceEvent struct {
	Opcode        *uint8 `json:"opcode,omitempty"`
	StackDepth    int    `json:"stack_depth"`
	MemoryPointer int    `json:"memory_pointer"`
	Done          bool   `json:"done,omitempty"`
	Error         string `json:"error,omitempty"`
}

// handleTrace upgrades to a websocket, reads one {"source": "..."}
// message, then streams one TraceEvent per committed group as the
// program executes, ending with a Done message.
func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var req RunRequest
	if err := conn.ReadJSON(&req); err != nil {
		conn.WriteJSON(TraceEvent{Done: true, Error: "invalid request: " + err.Error()})
		return
	}

	prog, err := compiler.Compile(splitLines(req.Source))
	if err != nil {
		conn.WriteJSON(TraceEvent{Done: true, Error: err.Error()})
		return
	}

	machine := vm.New()
	machine.OnCommit = func(ev vm.Event) {
		opcode := ev.Opcode
		conn.WriteJSON(TraceEvent{
			Opcode:        &opcode,
			StackDepth:    ev.StackDepth,
			MemoryPointer: ev.MemoryPointer,
		})
	}

	if _, err := machine.Run(prog); err != nil {
		conn.WriteJSON(TraceEvent{Done: true, Error: err.Error()})
		return
	}
	conn.WriteJSON(TraceEvent{Done: true})
}
