package api

import (
	"fmt"
	"net/http"
	"time"

	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"github.com/gorilla/websocket"
)

const writeWait = 2 * time.Second

// PanelHandler streams dumps to browser panels over websocket and serves the
// latest dump as plain JSON.
type PanelHandler struct {
	panel    *Panel
	logger   general_i.Logger
	upgrader websocket.Upgrader
}

func NewPanelHandler(p *Panel, logger general_i.Logger) *PanelHandler {
	return &PanelHandler{
		panel:  p,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Routes mounts the panel endpoints on mux.
func (h *PanelHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /debug/ws", h.Stream)
	mux.HandleFunc("GET /debug/state", h.State)
}

// State writes the latest dump.
func (h *PanelHandler) State(w http.ResponseWriter, r *http.Request) {
	d, err := h.panel.Latest()
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(d.Text)
}

// Stream upgrades the connection and pushes each dump as a text frame.
func (h *PanelHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.warn(fmt.Sprintf("upgrade failed for %s: %v", r.RemoteAddr, err))
		return
	}
	defer conn.Close()

	dumps, cancel := h.panel.Watch()
	defer cancel()

	// Panels never send; reading only notices the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var sent uint64
	if d, err := h.panel.Latest(); err == nil {
		if err := h.write(conn, d); err != nil {
			return
		}
		sent = d.Seq
	}

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case d := <-dumps:
			if d.Seq <= sent {
				continue
			}
			if err := h.write(conn, d); err != nil {
				h.warn(fmt.Sprintf("dropping panel %s: %v", r.RemoteAddr, err))
				return
			}
			sent = d.Seq
		}
	}
}

func (h *PanelHandler) write(conn *websocket.Conn, d *Dump) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, d.Text)
}

func (h *PanelHandler) warn(msg string) {
	if h.logger != nil {
		h.logger.Warning(msg)
	}
}
