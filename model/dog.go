package model

// Direction 朝向，零值为北
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	default:
		return "unknown"
	}
}

// Position 连续坐标
type Position struct {
	X, Y float64
}

type Speed struct {
	VX, VY float64
}

// IsZero 静止
func (s Speed) IsZero() bool { return s == Speed{} }

type DogID int

// Dog 玩家控制的角色，归属于唯一的 GameSession
type Dog struct {
	ID        DogID
	Name      string
	Position  Position
	Speed     Speed
	Direction Direction
}

// Move 设置朝向，并由速度标量和方向推导带符号速度
func (d *Dog) Move(dir Direction, speed float64) {
	d.Direction = dir
	switch dir {
	case North:
		d.Speed = Speed{VX: 0, VY: -speed}
	case South:
		d.Speed = Speed{VX: 0, VY: speed}
	case West:
		d.Speed = Speed{VX: -speed, VY: 0}
	case East:
		d.Speed = Speed{VX: speed, VY: 0}
	}
}

// Stop 速度清零，朝向与位置不变
func (d *Dog) Stop() {
	d.Speed = Speed{}
}

// heading 由速度推导行进方向；调用方保证速度非零
func (s Speed) heading() Direction {
	switch {
	case s.VX > 0:
		return East
	case s.VX < 0:
		return West
	case s.VY > 0:
		return South
	default:
		return North
	}
}

// Sequence 单调递增的 id 计数器，由注册表显式持有
type Sequence struct {
	next int
}

func (s *Sequence) Next() int {
	n := s.next
	s.next++
	return n
}
