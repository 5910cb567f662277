package model

// RoadIndex 网格点 → 经过该点的道路列表（按登记顺序）
type RoadIndex struct {
	cells map[Point][]*Road
}

// NewRoadIndex 把每条道路的整数跨度栅格化到索引中；之后只读
func NewRoadIndex(roads []Road) *RoadIndex {
	idx := &RoadIndex{cells: make(map[Point][]*Road)}
	for i := range roads {
		road := &roads[i]
		start, end := road.Start(), road.End()
		if road.IsHorizontal() {
			for x := min(start.X, end.X); x <= max(start.X, end.X); x++ {
				idx.add(Point{X: x, Y: start.Y}, road)
			}
		} else {
			for y := min(start.Y, end.Y); y <= max(start.Y, end.Y); y++ {
				idx.add(Point{X: start.X, Y: y}, road)
			}
		}
	}
	return idx
}

func (idx *RoadIndex) add(p Point, road *Road) {
	idx.cells[p] = append(idx.cells[p], road)
}

// At 返回该网格点上的道路；ok=false 表示该点不在任何道路上
func (idx *RoadIndex) At(p Point) ([]*Road, bool) {
	roads, ok := idx.cells[p]
	return roads, ok
}

// Len 已登记的网格点数量
func (idx *RoadIndex) Len() int {
	return len(idx.cells)
}
