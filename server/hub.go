package server

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/sasha-s/go-deadlock"
	"github.com/vmihailenco/msgpack/v5"

	"dogwalk/app"
	"dogwalk/errors"
	"dogwalk/model"
)

const (
	formatJSON    = "json"
	formatMsgpack = "msgpack"
)

// Hub 管理 WebSocket 客户端，每次 Tick 后推送其会话状态
type Hub struct {
	game    GameAPI
	metrics *app.Metrics

	mu      deadlock.RWMutex
	clients map[*wsClient]struct{}
	closed  bool
}

func NewHub(game GameAPI, metrics *app.Metrics) *Hub {
	return &Hub{
		game:    game,
		metrics: metrics,
		clients: make(map[*wsClient]struct{}),
	}
}

// Len 当前连接数
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// register 登记客户端并排入首帧
func (h *Hub) register(c *wsClient, first ...wsFrame) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return errors.New(errors.CodeInternal, "hub is closed")
	}
	h.clients[c] = struct{}{}
	h.metrics.AddWSClients(1)
	for _, f := range first {
		c.enqueue(f)
	}
	return nil
}

// unregister 可重复调用；关闭 send 前先移出集合，避免向已关闭通道写入
func (h *Hub) unregister(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.metrics.AddWSClients(-1)
}

// Broadcast 向所有客户端推送各自会话的最新状态；同一会话同一格式只编码一次
func (h *Hub) Broadcast() {
	type key struct {
		mapID  model.MapID
		format string
	}
	frames := make(map[key]wsFrame)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		k := key{mapID: c.player.MapID, format: c.format}
		frame, ok := frames[k]
		if !ok {
			var err error
			frame, err = h.stateFrame(c.player, c.format)
			if err != nil {
				Log.Warnw("failed to build state frame", "map", c.player.MapID, "error", err)
				continue
			}
			frames[k] = frame
		}
		c.enqueue(frame)
	}
}

// Close 断开全部客户端，之后拒绝新连接
func (h *Hub) Close() error {
	h.mu.Lock()
	h.closed = true
	clients := make([]*wsClient, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.unregister(c)
	}
	return nil
}

func (h *Hub) stateFrame(player *app.Player, format string) (wsFrame, error) {
	dogs, err := h.game.Dogs(player)
	if err != nil {
		return wsFrame{}, err
	}
	return encodeState(toStateResponse(dogs), format)
}

func encodeState(state StateResponse, format string) (wsFrame, error) {
	if format == formatMsgpack {
		b, err := msgpack.Marshal(state)
		if err != nil {
			return wsFrame{}, errors.Wrap(err, "failed to encode state as msgpack")
		}
		return wsFrame{kind: websocket.BinaryMessage, data: b}, nil
	}
	b, err := json.Marshal(state)
	if err != nil {
		return wsFrame{}, errors.Wrap(err, "failed to encode state as json")
	}
	return wsFrame{kind: websocket.TextMessage, data: b}, nil
}
