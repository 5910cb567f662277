// Package server 游戏的 HTTP 外壳：REST API、静态文件、WebSocket 状态推送与管理接口
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/matryer/way"
	"go.uber.org/multierr"

	"dogwalk/app"
	"dogwalk/model"
)

//go:generate mockgen -destination=mock/mock_game.go -package=servermock dogwalk/server GameAPI

// GameAPI HTTP 层依赖的核心操作（由 app.Application 实现）
type GameAPI interface {
	Maps() []*model.Map
	FindMap(id model.MapID) (*model.Map, bool)
	FindSession(id model.MapID) (*model.GameSession, bool)
	AddPlayer(name string, session *model.GameSession) (*app.Player, error)
	FindByToken(token app.Token) (*app.Player, bool)
	Move(player *app.Player, dir model.Direction) error
	Stop(player *app.Player) error
	Dogs(player *app.Player) ([]model.Dog, error)
	Tick(deltaMs int64) error
}

// Config 运行参数
type Config struct {
	Addr           string
	WWWRoot        string        // 为空则不提供静态文件
	TickPeriod     time.Duration // >0 表示自动推进，此时禁用 /game/tick
	RandomizeSpawn bool
	WSFormat       string // WebSocket 默认帧格式：json | msgpack
}

// AutoTick 是否由服务端定时推进
func (c Config) AutoTick() bool { return c.TickPeriod > 0 }

type Server struct {
	cfg     Config
	game    GameAPI
	metrics *app.Metrics
	hub     *Hub
	router  *way.Router
	http    *http.Server
}

// New metrics 可为 nil
func New(cfg Config, game GameAPI, metrics *app.Metrics) *Server {
	if metrics == nil {
		metrics = &app.Metrics{}
	}
	if cfg.WSFormat == "" {
		cfg.WSFormat = formatJSON
	}
	s := &Server{
		cfg:     cfg,
		game:    game,
		metrics: metrics,
	}
	s.hub = NewHub(game, metrics)
	s.routes()
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	r := way.NewRouter()

	r.HandleFunc("*", "/api/v1/maps", allowMethods(s.handleMaps, http.MethodGet, http.MethodHead))
	r.HandleFunc("*", "/api/v1/maps/:id", allowMethods(s.handleMap, http.MethodGet, http.MethodHead))
	r.HandleFunc("*", "/api/v1/map/:id", allowMethods(s.handleMap, http.MethodGet, http.MethodHead))
	r.HandleFunc("*", "/api/v1/game/join", allowMethods(s.handleJoin, http.MethodPost))
	r.HandleFunc("*", "/api/v1/game/players", allowMethods(s.withPlayer(s.handlePlayers), http.MethodGet, http.MethodHead))
	r.HandleFunc("*", "/api/v1/game/state", allowMethods(s.withPlayer(s.handleState), http.MethodGet, http.MethodHead))
	r.HandleFunc("*", "/api/v1/game/player/action", allowMethods(s.withPlayer(s.handleAction), http.MethodPost))
	r.HandleFunc("*", "/api/v1/game/tick", s.handleTick)
	r.HandleFunc("GET", "/api/v1/game/ws", s.handleWS)

	r.HandleFunc("GET", "/admin/config", s.handleAdminConfig)
	r.HandleFunc("GET", "/admin/metrics", s.handleMetrics)
	r.HandleFunc("GET", "/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	static := newStaticHandler(s.cfg.WWWRoot)
	r.NotFound = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/api" || strings.HasPrefix(req.URL.Path, "/api/") {
			writeError(w, http.StatusBadRequest, codeBadRequest, "Bad request")
			return
		}
		static.ServeHTTP(w, req)
	})
	s.router = r
}

// Handler 带请求日志的完整处理链
func (s *Server) Handler() http.Handler {
	return logRequests(s.router)
}

func (s *Server) Hub() *Hub { return s.hub }

// ListenAndServe 阻塞直到 Shutdown
func (s *Server) ListenAndServe() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown 停止接收请求并断开所有 WebSocket 客户端
func (s *Server) Shutdown(ctx context.Context) error {
	return multierr.Combine(
		s.http.Shutdown(ctx),
		s.hub.Close(),
	)
}
