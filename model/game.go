package model

import (
	"go.uber.org/multierr"

	"dogwalk/errors"
)

// Game 地图注册表；每张地图对应一个会话
type Game struct {
	maps     []*Map
	mapIndex map[MapID]int
	sessions []*GameSession
	dogIDs   Sequence
}

func NewGame() *Game {
	return &Game{mapIndex: make(map[MapID]int)}
}

// AddMap 地图 id 重复时返回 DuplicateEntity，注册表保持不变
func (g *Game) AddMap(m *Map) error {
	if m == nil {
		return errors.InvalidArgument("map is required")
	}
	if _, ok := g.mapIndex[m.ID()]; ok {
		return errors.DuplicateEntityf("map %q already exists", m.ID())
	}
	g.mapIndex[m.ID()] = len(g.maps)
	g.maps = append(g.maps, m)
	return nil
}

// Maps 按加入顺序
func (g *Game) Maps() []*Map { return g.maps }

func (g *Game) FindMap(id MapID) (*Map, bool) {
	i, ok := g.mapIndex[id]
	if !ok {
		return nil, false
	}
	return g.maps[i], true
}

// FindSession 需先调用 StartSessions
func (g *Game) FindSession(id MapID) (*GameSession, bool) {
	i, ok := g.mapIndex[id]
	if !ok || i >= len(g.sessions) {
		return nil, false
	}
	return g.sessions[i], true
}

// Sessions 与 Maps 同序
func (g *Game) Sessions() []*GameSession { return g.sessions }

// StartSessions 按地图顺序为每张地图建立一个会话，替换已有会话
func (g *Game) StartSessions(randomizeSpawn bool, opts ...SessionOption) {
	sessions := make([]*GameSession, 0, len(g.maps))
	for _, m := range g.maps {
		sessions = append(sessions, NewGameSession(m, randomizeSpawn, &g.dogIDs, opts...))
	}
	g.sessions = sessions
}

// Tick 依次推进所有会话；单个会话出错不影响其他会话
func (g *Game) Tick(deltaMs int64) error {
	var errs error
	for _, s := range g.sessions {
		if err := s.Tick(deltaMs); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "session %q", s.Map().ID()))
		}
	}
	return errs
}
