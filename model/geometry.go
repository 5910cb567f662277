package model

// Point 地图网格上的整数坐标（道路端点、道路索引键）
type Point struct {
	X, Y int
}

type Size struct {
	Width, Height int
}

type Rectangle struct {
	Position Point
	Size     Size
}

type Offset struct {
	DX, DY int
}

// Road 轴对齐的道路线段，只能水平或垂直
type Road struct {
	start Point
	end   Point
}

// NewHorizontalRoad 水平道路：y 固定，x 从 start.X 到 endX
func NewHorizontalRoad(start Point, endX int) Road {
	return Road{start: start, end: Point{X: endX, Y: start.Y}}
}

// NewVerticalRoad 垂直道路：x 固定，y 从 start.Y 到 endY
func NewVerticalRoad(start Point, endY int) Road {
	return Road{start: start, end: Point{X: start.X, Y: endY}}
}

func (r Road) Start() Point { return r.start }
func (r Road) End() Point   { return r.end }

// IsHorizontal 单点道路同时视为水平和垂直
func (r Road) IsHorizontal() bool { return r.start.Y == r.end.Y }
func (r Road) IsVertical() bool   { return r.start.X == r.end.X }

// Bounds 道路可行走区域：中心线向四周扩展 MaxDelta
func (r Road) Bounds() (minX, minY, maxX, maxY float64) {
	minX = float64(min(r.start.X, r.end.X)) - MaxDelta
	maxX = float64(max(r.start.X, r.end.X)) + MaxDelta
	minY = float64(min(r.start.Y, r.end.Y)) - MaxDelta
	maxY = float64(max(r.start.Y, r.end.Y)) + MaxDelta
	return
}

// Contains 判断位置是否落在道路的容差带内（含边界）
func (r Road) Contains(p Position) bool {
	minX, minY, maxX, maxY := r.Bounds()
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// FarEdge 沿行进方向能到达的最远坐标（行进轴上的值）
func (r Road) FarEdge(dir Direction) float64 {
	minX, minY, maxX, maxY := r.Bounds()
	switch dir {
	case North:
		return minY
	case South:
		return maxY
	case West:
		return minX
	default:
		return maxX
	}
}

// Building 仅用于展示，不参与移动计算
type Building struct {
	Bounds Rectangle
}

type OfficeID string

// Office 取送点
type Office struct {
	ID       OfficeID
	Position Point
	Offset   Offset
}
