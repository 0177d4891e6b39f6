package server

import (
	"bytes"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadHub tracks connected preview clients and broadcasts reload
// notifications when the designs directory changes.
type reloadHub struct {
	mu      sync.Mutex
	clients map[string]*websocket.Conn
}

func newReloadHub() *reloadHub {
	return &reloadHub{clients: make(map[string]*websocket.Conn)}
}

func (h *reloadHub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livereload: websocket upgrade: %v", err)
		return
	}

	id := uuid.New().String()
	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, id)
		h.mu.Unlock()
		conn.Close()
	}()

	// Drain the connection; clients never send anything meaningful.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("livereload: websocket read: %v", err)
			}
			return
		}
	}
}

// broadcast tells every connected client to reload.
func (h *reloadHub) broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			conn.Close()
			delete(h.clients, id)
		}
	}
}

// watchLoop polls the designs directory and notifies clients when any
// file changes. Polling keeps this dependency-free and is plenty for a
// handful of mockup files.
func (s *Server) watchLoop() {
	last := latestModTime(s.cfg.DesignDir)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		current := latestModTime(s.cfg.DesignDir)
		if current.After(last) {
			last = current
			s.hub.broadcast()
		}
	}
}

// latestModTime returns the newest modification time under dir.
func latestModTime(dir string) time.Time {
	var latest time.Time
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
		return nil
	})
	return latest
}

// injectReloadScript appends the reload script before </body>, or at the
// end when the page has no closing body tag.
func injectReloadScript(page []byte) []byte {
	marker := []byte("</body>")
	if idx := bytes.LastIndex(page, marker); idx >= 0 {
		var out bytes.Buffer
		out.Grow(len(page) + len(reloadScript) + 1)
		out.Write(page[:idx])
		out.WriteString(reloadScript)
		out.WriteString("\n")
		out.Write(page[idx:])
		return out.Bytes()
	}
	return append(page, []byte("\n"+reloadScript)...)
}
