package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"dogwalk/app"
)

const (
	wsSendQueue  = 64
	wsWriteWait  = 5 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
	wsReadLimit  = 1 << 20 // 1MB
)

type wsFrame struct {
	kind int
	data []byte
}

// wsClient 一条 WebSocket 连接，绑定到已加入的玩家
type wsClient struct {
	hub    *Hub
	ws     *websocket.Conn
	send   chan wsFrame
	player *app.Player
	format string
}

// enqueue 非阻塞，队列满则丢弃，保证 Tick 不被慢客户端拖住
func (c *wsClient) enqueue(f wsFrame) {
	select {
	case c.send <- f:
	default:
	}
}

// writePump 独立协程，从 send 队列写出；send 关闭即断开
func (c *wsClient) writePump() {
	ping := time.NewTicker(wsPingPeriod)
	defer func() {
		ping.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case f, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.ws.WriteMessage(f.kind, f.data); err != nil {
				return
			}
		case <-ping.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump 读取客户端动作：文本帧为 JSON，二进制帧为 msgpack
func (c *wsClient) readPump(s *Server) {
	defer c.hub.unregister(c)
	c.ws.SetReadLimit(wsReadLimit)
	_ = c.ws.SetReadDeadline(time.Now().Add(wsPongWait))
	c.ws.SetPongHandler(func(string) error { return c.ws.SetReadDeadline(time.Now().Add(wsPongWait)) })

	for {
		kind, payload, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				Log.Debugw("websocket read failed", "player_id", c.player.ID, "error", err)
			}
			return
		}

		var req actionRequest
		if kind == websocket.BinaryMessage {
			err = msgpack.Unmarshal(payload, &req)
		} else {
			err = json.Unmarshal(payload, &req)
		}
		if err != nil || req.Move == nil {
			continue
		}
		if err := s.applyMove(c.player, *req.Move); err != nil {
			Log.Debugw("websocket action rejected", "player_id", c.player.ID, "move", *req.Move, "error", err)
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /api/v1/game/ws?token=...&format=json|msgpack
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	token := app.Token(query.Get("token"))
	if !token.IsWellFormed() {
		writeError(w, http.StatusUnauthorized, codeInvalidToken, "Invalid token")
		return
	}
	player, ok := s.game.FindByToken(token)
	if !ok {
		writeError(w, http.StatusUnauthorized, codeUnknownToken, "Player token has not been found")
		return
	}
	format := query.Get("format")
	if format == "" {
		format = s.cfg.WSFormat
	}
	if format != formatJSON && format != formatMsgpack {
		writeError(w, http.StatusBadRequest, codeInvalidArgument, "Unsupported format")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		Log.Warnw("websocket upgrade failed", "error", err)
		return
	}

	client := &wsClient{
		hub:    s.hub,
		ws:     conn,
		send:   make(chan wsFrame, wsSendQueue),
		player: player,
		format: format,
	}
	var first []wsFrame
	if frame, err := s.hub.stateFrame(player, format); err == nil {
		first = append(first, frame)
	}
	if err := s.hub.register(client, first...); err != nil {
		_ = conn.Close()
		return
	}
	Log.Infow("websocket connected", "player_id", player.ID, "map", player.MapID, "format", format)

	go client.writePump()
	go client.readPump(s)
}
