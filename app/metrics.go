package app

import (
	"sync/atomic"
)

// Metrics 运行期关键指标（用于监控与调试）
type Metrics struct {
	TickCount       int64 // Tick 调用次数（含失败）
	TickErrors      int64 // 其中失败的次数
	TotalTickNs     int64 // Tick 累计耗时（纳秒）
	SimulatedMs     int64 // 累计推进的游戏时间（毫秒）
	PlayersJoined   int64
	ActionsAccepted int64
	WSClients       int64 // 当前 WebSocket 连接数
}

func (m *Metrics) IncPlayersJoined()    { atomic.AddInt64(&m.PlayersJoined, 1) }
func (m *Metrics) IncActionsAccepted()  { atomic.AddInt64(&m.ActionsAccepted, 1) }
func (m *Metrics) IncTickErrors()       { atomic.AddInt64(&m.TickErrors, 1) }
func (m *Metrics) AddWSClients(n int64) { atomic.AddInt64(&m.WSClients, n) }
func (m *Metrics) AddTick(deltaMs, ns int64) {
	atomic.AddInt64(&m.TickCount, 1)
	atomic.AddInt64(&m.SimulatedMs, deltaMs)
	atomic.AddInt64(&m.TotalTickNs, ns)
}

// Snapshot 只读副本，便于 HTTP 输出
func (m *Metrics) Snapshot() map[string]any {
	tick := atomic.LoadInt64(&m.TickCount)
	total := atomic.LoadInt64(&m.TotalTickNs)
	var avgMs float64
	if tick > 0 {
		avgMs = float64(total) / float64(tick) / 1e6
	}
	return map[string]any{
		"tick_count":       tick,
		"tick_errors":      atomic.LoadInt64(&m.TickErrors),
		"simulated_ms":     atomic.LoadInt64(&m.SimulatedMs),
		"players_joined":   atomic.LoadInt64(&m.PlayersJoined),
		"actions_accepted": atomic.LoadInt64(&m.ActionsAccepted),
		"ws_clients":       atomic.LoadInt64(&m.WSClients),
		"avg_tick_ms":      avgMs,
	}
}
