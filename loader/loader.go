// Package loader 读取地图配置文档，构建 model.Game
package loader

import (
	"encoding/json"
	"io"
	"os"

	"dogwalk/errors"
	"dogwalk/model"
)

type document struct {
	DefaultDogSpeed *float64  `json:"defaultDogSpeed,omitempty"`
	Maps            []mapJSON `json:"maps"`
}

type mapJSON struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	DogSpeed  *float64       `json:"dogSpeed,omitempty"`
	Roads     []roadJSON     `json:"roads"`
	Buildings []buildingJSON `json:"buildings"`
	Offices   []officeJSON   `json:"offices"`
}

// 道路：x1 与 y1 二选一
type roadJSON struct {
	X0 int  `json:"x0"`
	Y0 int  `json:"y0"`
	X1 *int `json:"x1,omitempty"`
	Y1 *int `json:"y1,omitempty"`
}

type buildingJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type officeJSON struct {
	ID      string `json:"id"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	OffsetX int    `json:"offsetX"`
	OffsetY int    `json:"offsetY"`
}

// LoadFile 从文件加载
func LoadFile(path string) (*model.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to open map config")
	}
	defer f.Close()
	return Load(f)
}

// Load 解析配置文档；地图或办公点 id 重复时返回 DuplicateEntity
func Load(r io.Reader) (*model.Game, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse map config")
	}

	defaultSpeed := model.DefaultDogSpeed
	if doc.DefaultDogSpeed != nil {
		defaultSpeed = *doc.DefaultDogSpeed
	}

	game := model.NewGame()
	for i, mj := range doc.Maps {
		m, err := buildMap(mj, defaultSpeed)
		if err != nil {
			return nil, errors.Wrapf(err, "map #%d", i)
		}
		if err := game.AddMap(m); err != nil {
			return nil, err
		}
	}
	return game, nil
}

func buildMap(mj mapJSON, defaultSpeed float64) (*model.Map, error) {
	if mj.ID == "" {
		return nil, errors.InvalidArgument("map id is required")
	}
	m := model.NewMap(model.MapID(mj.ID), mj.Name)

	speed := defaultSpeed
	if mj.DogSpeed != nil {
		speed = *mj.DogSpeed
	}
	if speed < 0 {
		return nil, errors.InvalidArgumentf("map %q: negative dog speed %g", mj.ID, speed)
	}
	m.SetSpeed(speed)

	for i, rj := range mj.Roads {
		road, err := buildRoad(rj)
		if err != nil {
			return nil, errors.Wrapf(err, "map %q road #%d", mj.ID, i)
		}
		m.AddRoad(road)
	}
	for _, bj := range mj.Buildings {
		m.AddBuilding(model.Building{Bounds: model.Rectangle{
			Position: model.Point{X: bj.X, Y: bj.Y},
			Size:     model.Size{Width: bj.W, Height: bj.H},
		}})
	}
	for _, oj := range mj.Offices {
		office := model.Office{
			ID:       model.OfficeID(oj.ID),
			Position: model.Point{X: oj.X, Y: oj.Y},
			Offset:   model.Offset{DX: oj.OffsetX, DY: oj.OffsetY},
		}
		if err := m.AddOffice(office); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func buildRoad(rj roadJSON) (model.Road, error) {
	start := model.Point{X: rj.X0, Y: rj.Y0}
	switch {
	case rj.X1 != nil && rj.Y1 != nil:
		return model.Road{}, errors.InvalidArgument("road must have either x1 or y1, not both")
	case rj.X1 != nil:
		return model.NewHorizontalRoad(start, *rj.X1), nil
	case rj.Y1 != nil:
		return model.NewVerticalRoad(start, *rj.Y1), nil
	default:
		return model.Road{}, errors.InvalidArgument("road must have x1 or y1")
	}
}
