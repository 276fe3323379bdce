package preview

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// upgrader for the live-preview socket. The preview server is a local
// development tool, so cross-origin connections are accepted.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// handleLive serves the live preview: each incoming frame carries an entry
// and optionally a profile, and is answered with the rendered markup, so a
// profile editor can re-render on every edit without reposting.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("live preview upgrade failed", "err", err)
		return
	}
	defer conn.Close()
	s.logger.Debug("live preview connected", "remote", conn.RemoteAddr().String())

	for {
		var req renderRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("live preview read failed", "err", err)
			}
			return
		}

		prof, err := s.requestProfile(req.Profile)
		if err != nil {
			if err := conn.WriteJSON(renderResponse{Error: err.Error()}); err != nil {
				return
			}
			continue
		}

		html := s.renderer.Render(r.Context(), req.XML, prof, req.Category)
		if err := conn.WriteJSON(renderResponse{HTML: html}); err != nil {
			return
		}
	}
}
