package server

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/matryer/way"

	"dogwalk/app"
	"dogwalk/errors"
	"dogwalk/model"
)

const maxBodyBytes = 1 << 20

var errUnknownMove = errors.InvalidArgument("unknown move")

type playerHandler func(w http.ResponseWriter, r *http.Request, player *app.Player)

// GET /api/v1/maps
func (s *Server) handleMaps(w http.ResponseWriter, r *http.Request) {
	maps := s.game.Maps()
	out := make([]mapSummary, 0, len(maps))
	for _, m := range maps {
		out = append(out, mapSummary{ID: string(m.ID()), Name: m.Name()})
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /api/v1/maps/:id
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	id := model.MapID(way.Param(r.Context(), "id"))
	m, ok := s.game.FindMap(id)
	if !ok {
		writeError(w, http.StatusNotFound, codeMapNotFound, "Map not found")
		return
	}
	writeJSON(w, http.StatusOK, toMapJSON(m))
}

// POST /api/v1/game/join
func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if err := decodeJSON(r, &req); err != nil || req.UserName == nil || req.MapID == nil {
		writeError(w, http.StatusBadRequest, codeInvalidArgument, "Join game request parse error")
		return
	}
	if strings.TrimSpace(*req.UserName) == "" {
		writeError(w, http.StatusBadRequest, codeInvalidArgument, "Invalid name")
		return
	}
	session, ok := s.game.FindSession(model.MapID(*req.MapID))
	if !ok {
		writeError(w, http.StatusNotFound, codeMapNotFound, "Map not found")
		return
	}

	player, err := s.game.AddPlayer(*req.UserName, session)
	if err != nil {
		writeAppError(w, err)
		return
	}
	Log.Infow("player joined", "player_id", player.ID, "map", player.MapID, "dog", player.Dog)
	writeJSON(w, http.StatusOK, joinResponse{
		AuthToken: string(player.Token),
		PlayerID:  int(player.ID),
	})
}

// GET /api/v1/game/players
func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request, player *app.Player) {
	dogs, err := s.game.Dogs(player)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlayersResponse(dogs))
}

// GET /api/v1/game/state
func (s *Server) handleState(w http.ResponseWriter, r *http.Request, player *app.Player) {
	dogs, err := s.game.Dogs(player)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStateResponse(dogs))
}

// POST /api/v1/game/player/action
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request, player *app.Player) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != contentTypeJSON {
		writeError(w, http.StatusBadRequest, codeInvalidArgument, "Invalid content type")
		return
	}
	var req actionRequest
	if err := decodeJSON(r, &req); err != nil || req.Move == nil {
		writeError(w, http.StatusBadRequest, codeInvalidArgument, "Failed to parse action")
		return
	}
	if err := s.applyMove(player, *req.Move); err != nil {
		if err == errUnknownMove {
			writeError(w, http.StatusBadRequest, codeInvalidArgument, "Failed to parse action")
			return
		}
		writeAppError(w, err)
		return
	}
	writeOK(w)
}

// POST /api/v1/game/tick，自动推进模式下不可用
func (s *Server) handleTick(w http.ResponseWriter, r *http.Request) {
	if s.cfg.AutoTick() {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid endpoint")
		return
	}
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, codeInvalidMethod, "Invalid method")
		return
	}
	var req tickRequest
	if err := decodeJSON(r, &req); err != nil || req.TimeDelta == nil || *req.TimeDelta < 1 {
		writeError(w, http.StatusBadRequest, codeInvalidArgument, "Failed to parse tick request JSON")
		return
	}
	if err := s.game.Tick(*req.TimeDelta); err != nil {
		writeAppError(w, err)
		return
	}
	writeOK(w)
}

// withPlayer 校验 Bearer 令牌并解析玩家
func (s *Server) withPlayer(h playerHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			writeError(w, http.StatusUnauthorized, codeInvalidToken, "Authorization header is missing")
			return
		}
		player, ok := s.game.FindByToken(token)
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnknownToken, "Player token has not been found")
			return
		}
		h(w, r, player)
	}
}

// applyMove 在 HTTP 与 WebSocket 之间共享的动作入口
func (s *Server) applyMove(player *app.Player, move string) error {
	dir, stop, ok := parseMove(move)
	if !ok {
		return errUnknownMove
	}
	if stop {
		return s.game.Stop(player)
	}
	return s.game.Move(player, dir)
}

// bearerToken 只接受 "Bearer <32 位十六进制>"
func bearerToken(header string) (app.Token, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := app.Token(strings.TrimPrefix(header, prefix))
	if !token.IsWellFormed() {
		return "", false
	}
	return token, true
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	return dec.Decode(v)
}
