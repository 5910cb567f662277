package model

import (
	"math"
	"math/rand"
	"time"

	"go.uber.org/multierr"

	"dogwalk/errors"
)

// MaxDelta 道路半宽：中心线两侧及两端的可行走容差
const MaxDelta = 0.4

// DogIndex 狗在所属会话中的稳定下标
type DogIndex int

// GameSession 一张地图的运行实例：持有该地图上的全部狗与道路索引
type GameSession struct {
	gameMap        *Map
	dogs           []Dog
	roads          *RoadIndex
	randomizeSpawn bool
	rnd            *rand.Rand
	dogIDs         *Sequence
}

// SessionOption 会话构造选项
type SessionOption func(*GameSession)

// WithRand 指定出生点随机源（测试中用于固定结果）
func WithRand(rnd *rand.Rand) SessionOption {
	return func(s *GameSession) { s.rnd = rnd }
}

// NewGameSession 基于地图构建会话；dogIDs 为 nil 时使用会话私有计数器
func NewGameSession(m *Map, randomizeSpawn bool, dogIDs *Sequence, opts ...SessionOption) *GameSession {
	if dogIDs == nil {
		dogIDs = &Sequence{}
	}
	s := &GameSession{
		gameMap:        m,
		roads:          NewRoadIndex(m.Roads()),
		randomizeSpawn: randomizeSpawn,
		dogIDs:         dogIDs,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

func (s *GameSession) Map() *Map { return s.gameMap }

// Speed 该地图上狗的基础速度
func (s *GameSession) Speed() float64 { return s.gameMap.Speed() }

// AddDog 在地图上生成一只狗，朝北、静止
func (s *GameSession) AddDog(name string) (DogIndex, error) {
	roads := s.gameMap.Roads()
	if len(roads) == 0 {
		return 0, errors.InvariantViolationf("map %q has no roads to spawn on", s.gameMap.ID())
	}

	dog := Dog{
		ID:        DogID(s.dogIDs.Next()),
		Name:      name,
		Direction: North,
	}
	if s.randomizeSpawn {
		dog.Position = s.randomPointOn(roads[s.rnd.Intn(len(roads))])
	} else {
		start := roads[0].Start()
		dog.Position = Position{X: float64(start.X), Y: float64(start.Y)}
	}

	s.dogs = append(s.dogs, dog)
	return DogIndex(len(s.dogs) - 1), nil
}

func (s *GameSession) randomPointOn(r Road) Position {
	start, end := r.Start(), r.End()
	if r.IsHorizontal() {
		return Position{X: s.uniform(start.X, end.X), Y: float64(start.Y)}
	}
	return Position{X: float64(start.X), Y: s.uniform(start.Y, end.Y)}
}

func (s *GameSession) uniform(a, b int) float64 {
	lo, hi := float64(min(a, b)), float64(max(a, b))
	return lo + s.rnd.Float64()*(hi-lo)
}

// Dog 按下标取狗；越界返回 nil。
// 返回的指针只在下一次 AddDog 之前有效，之后须按下标重新获取。
func (s *GameSession) Dog(idx DogIndex) *Dog {
	if idx < 0 || int(idx) >= len(s.dogs) {
		return nil
	}
	return &s.dogs[idx]
}

// Dogs 当前全部狗的快照（按加入顺序）
func (s *GameSession) Dogs() []Dog {
	out := make([]Dog, len(s.dogs))
	copy(out, s.dogs)
	return out
}

// Tick 推进 deltaMs 毫秒。某只狗的位置不在道路索引中时该狗保持不动，
// 其余狗照常推进，最终返回合并后的 InvariantViolation。
func (s *GameSession) Tick(deltaMs int64) error {
	var errs error
	for i := range s.dogs {
		dog := &s.dogs[i]
		if dog.Speed.IsZero() {
			continue
		}
		pos, stop, err := s.calculateMove(dog.Position, dog.Speed, deltaMs)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "dog %d", dog.ID))
			continue
		}
		dog.Position = pos
		if stop {
			dog.Stop()
		}
	}
	return errs
}

// calculateMove 贪心碰撞：终点落在当前格任一道路容差带内则直接接受；
// 否则按第一条与行进轴同向的道路把行进轴截到其远端边界并停下。
func (s *GameSession) calculateMove(pos Position, speed Speed, deltaMs int64) (Position, bool, error) {
	seconds := float64(deltaMs) / 1000.0
	end := Position{
		X: pos.X + speed.VX*seconds,
		Y: pos.Y + speed.VY*seconds,
	}

	cell := Point{X: int(math.Round(pos.X)), Y: int(math.Round(pos.Y))}
	roads, ok := s.roads.At(cell)
	if !ok {
		return pos, false, errors.InvariantViolationf("position (%g, %g) is off road: no road at %v", pos.X, pos.Y, cell)
	}

	for _, road := range roads {
		if road.Contains(end) {
			return end, false, nil
		}
	}

	heading := speed.heading()
	horizontal := heading == East || heading == West
	for _, road := range roads {
		if horizontal && road.IsHorizontal() {
			return Position{X: road.FarEdge(heading), Y: pos.Y}, true, nil
		}
		if !horizontal && road.IsVertical() {
			return Position{X: pos.X, Y: road.FarEdge(heading)}, true, nil
		}
	}

	// 当前格没有同向道路：只允许走到本格边缘
	switch heading {
	case East:
		return Position{X: float64(cell.X) + MaxDelta, Y: pos.Y}, true, nil
	case West:
		return Position{X: float64(cell.X) - MaxDelta, Y: pos.Y}, true, nil
	case South:
		return Position{X: pos.X, Y: float64(cell.Y) + MaxDelta}, true, nil
	default:
		return Position{X: pos.X, Y: float64(cell.Y) - MaxDelta}, true, nil
	}
}
