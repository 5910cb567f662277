package model

import "dogwalk/errors"

type MapID string

// DefaultDogSpeed 配置中未给出速度时使用
const DefaultDogSpeed = 1.0

// Map 一张游戏地图，加载完成后只读
type Map struct {
	id        MapID
	name      string
	speed     float64
	roads     []Road
	buildings []Building
	offices   []Office

	officeIndex map[OfficeID]int
}

func NewMap(id MapID, name string) *Map {
	return &Map{
		id:          id,
		name:        name,
		speed:       DefaultDogSpeed,
		officeIndex: make(map[OfficeID]int),
	}
}

func (m *Map) ID() MapID             { return m.id }
func (m *Map) Name() string          { return m.name }
func (m *Map) Speed() float64        { return m.speed }
func (m *Map) Roads() []Road         { return m.roads }
func (m *Map) Buildings() []Building { return m.buildings }
func (m *Map) Offices() []Office     { return m.offices }

func (m *Map) SetSpeed(speed float64) { m.speed = speed }

func (m *Map) AddRoad(r Road) { m.roads = append(m.roads, r) }

func (m *Map) AddBuilding(b Building) { m.buildings = append(m.buildings, b) }

// AddOffice 办公点 id 在地图内唯一，重复时返回 DuplicateEntity 且地图保持不变
func (m *Map) AddOffice(o Office) error {
	if _, ok := m.officeIndex[o.ID]; ok {
		return errors.DuplicateEntityf("office %q already exists on map %q", o.ID, m.id)
	}
	m.officeIndex[o.ID] = len(m.offices)
	m.offices = append(m.offices, o)
	return nil
}
