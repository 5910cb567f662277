// Package app 组合 Game 与 Players，向 HTTP 层提供串行化的游戏操作
package app

import (
	"time"

	"github.com/sasha-s/go-deadlock"

	"dogwalk/errors"
	"dogwalk/model"
)

// Config Application 构造参数
type Config struct {
	RandomizeSpawn bool
	Tokens         TokenSource
	SessionOptions []model.SessionOption
}

// Application 所有修改与读取都在同一把锁下串行执行，
// 外部拿到的狗状态都是快照，不会观察到 Tick 中途的数据。
type Application struct {
	mu      deadlock.Mutex
	game    *model.Game
	players *Players
	metrics *Metrics

	hooksMu   deadlock.RWMutex
	tickHooks []func()
}

// New 接管 game 并为每张地图启动会话
func New(game *model.Game, cfg Config) *Application {
	game.StartSessions(cfg.RandomizeSpawn, cfg.SessionOptions...)
	return &Application{
		game:    game,
		players: NewPlayers(cfg.Tokens),
		metrics: &Metrics{},
	}
}

func (a *Application) Metrics() *Metrics { return a.metrics }

// Maps 地图加载后只读，无需加锁
func (a *Application) Maps() []*model.Map {
	return a.game.Maps()
}

func (a *Application) FindMap(id model.MapID) (*model.Map, bool) {
	return a.game.FindMap(id)
}

func (a *Application) FindSession(id model.MapID) (*model.GameSession, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.game.FindSession(id)
}

// AddPlayer 在会话中生成狗并登记玩家
func (a *Application) AddPlayer(name string, session *model.GameSession) (*Player, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	player, err := a.players.AddPlayer(name, session)
	if err != nil {
		return nil, err
	}
	a.metrics.IncPlayersJoined()
	return player, nil
}

func (a *Application) FindByToken(token Token) (*Player, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.players.FindByToken(token)
}

// Move 按地图速度朝 dir 移动
func (a *Application) Move(player *Player, dir model.Direction) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	session, dog, err := a.resolve(player)
	if err != nil {
		return err
	}
	dog.Move(dir, session.Speed())
	a.metrics.IncActionsAccepted()
	return nil
}

func (a *Application) Stop(player *Player) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, dog, err := a.resolve(player)
	if err != nil {
		return err
	}
	dog.Stop()
	a.metrics.IncActionsAccepted()
	return nil
}

// Dogs 玩家所在会话中全部狗的快照（包括其他玩家的狗）
func (a *Application) Dogs(player *Player) ([]model.Dog, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	session, _, err := a.resolve(player)
	if err != nil {
		return nil, err
	}
	return session.Dogs(), nil
}

// Tick 推进全部会话 deltaMs 毫秒，完成后通知订阅者
func (a *Application) Tick(deltaMs int64) error {
	if deltaMs < 1 {
		return errors.InvalidArgumentf("time delta must be positive, got %d", deltaMs)
	}

	start := time.Now()
	a.mu.Lock()
	err := a.game.Tick(deltaMs)
	a.mu.Unlock()

	if err != nil {
		a.metrics.IncTickErrors()
	}
	a.metrics.AddTick(deltaMs, time.Since(start).Nanoseconds())
	a.notifyTick()
	return err
}

// OnTick 注册 Tick 完成后的回调（在锁外调用）
func (a *Application) OnTick(hook func()) {
	a.hooksMu.Lock()
	defer a.hooksMu.Unlock()
	a.tickHooks = append(a.tickHooks, hook)
}

func (a *Application) notifyTick() {
	a.hooksMu.RLock()
	hooks := a.tickHooks
	a.hooksMu.RUnlock()
	for _, hook := range hooks {
		hook()
	}
}

func (a *Application) resolve(player *Player) (*model.GameSession, *model.Dog, error) {
	if player == nil {
		return nil, nil, errors.InvalidArgument("player is required")
	}
	session, ok := a.game.FindSession(player.MapID)
	if !ok {
		return nil, nil, errors.NotFoundf("session for map %q", player.MapID)
	}
	dog := session.Dog(player.Dog)
	if dog == nil {
		return nil, nil, errors.InvariantViolationf("player %d has no dog in map %q", player.ID, player.MapID)
	}
	return session, dog, nil
}
