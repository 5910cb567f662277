package server

import (
	"net/http"
)

type adminConfig struct {
	TickPeriodMs   int64  `json:"tick_period_ms"`
	AutoTick       bool   `json:"auto_tick"`
	RandomizeSpawn bool   `json:"randomize_spawn"`
	WWWRoot        string `json:"www_root,omitempty"`
	WSFormat       string `json:"ws_format"`
}

// handleAdminConfig 只读输出运行参数
// GET /admin/config
func (s *Server) handleAdminConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, adminConfig{
		TickPeriodMs:   s.cfg.TickPeriod.Milliseconds(),
		AutoTick:       s.cfg.AutoTick(),
		RandomizeSpawn: s.cfg.RandomizeSpawn,
		WWWRoot:        s.cfg.WWWRoot,
		WSFormat:       s.cfg.WSFormat,
	})
}

// handleMetrics 输出运行指标
// GET /admin/metrics
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.metrics.Snapshot())
}
