package server

import (
	"strconv"

	"dogwalk/model"
)

// 入站请求

type joinRequest struct {
	UserName *string `json:"userName"`
	MapID    *string `json:"mapId"`
}

// actionRequest 客户端移动意图，"" 表示停下
type actionRequest struct {
	Move *string `json:"move" msgpack:"move"`
}

type tickRequest struct {
	TimeDelta *int64 `json:"timeDelta"`
}

// 出站响应

type joinResponse struct {
	AuthToken string `json:"authToken"`
	PlayerID  int    `json:"playerId"`
}

type mapSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

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

type mapJSON struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Roads     []roadJSON     `json:"roads"`
	Buildings []buildingJSON `json:"buildings"`
	Offices   []officeJSON   `json:"offices"`
}

type playerName struct {
	Name string `json:"name"`
}

// DogState 与 /game/state 相同的单只狗状态，WebSocket 也复用
type DogState struct {
	Pos   [2]float64 `json:"pos" msgpack:"pos"`
	Speed [2]float64 `json:"speed" msgpack:"speed"`
	Dir   string     `json:"dir" msgpack:"dir"`
}

type StateResponse struct {
	Players map[string]DogState `json:"players" msgpack:"players"`
}

func toMapJSON(m *model.Map) mapJSON {
	out := mapJSON{
		ID:        string(m.ID()),
		Name:      m.Name(),
		Roads:     make([]roadJSON, 0, len(m.Roads())),
		Buildings: make([]buildingJSON, 0, len(m.Buildings())),
		Offices:   make([]officeJSON, 0, len(m.Offices())),
	}
	for _, r := range m.Roads() {
		start, end := r.Start(), r.End()
		rj := roadJSON{X0: start.X, Y0: start.Y}
		if r.IsHorizontal() {
			rj.X1 = &end.X
		} else {
			rj.Y1 = &end.Y
		}
		out.Roads = append(out.Roads, rj)
	}
	for _, b := range m.Buildings() {
		out.Buildings = append(out.Buildings, buildingJSON{
			X: b.Bounds.Position.X,
			Y: b.Bounds.Position.Y,
			W: b.Bounds.Size.Width,
			H: b.Bounds.Size.Height,
		})
	}
	for _, o := range m.Offices() {
		out.Offices = append(out.Offices, officeJSON{
			ID:      string(o.ID),
			X:       o.Position.X,
			Y:       o.Position.Y,
			OffsetX: o.Offset.DX,
			OffsetY: o.Offset.DY,
		})
	}
	return out
}

func toStateResponse(dogs []model.Dog) StateResponse {
	players := make(map[string]DogState, len(dogs))
	for _, d := range dogs {
		players[strconv.Itoa(int(d.ID))] = DogState{
			Pos:   [2]float64{d.Position.X, d.Position.Y},
			Speed: [2]float64{d.Speed.VX, d.Speed.VY},
			Dir:   dirLetter(d.Direction),
		}
	}
	return StateResponse{Players: players}
}

func toPlayersResponse(dogs []model.Dog) map[string]playerName {
	out := make(map[string]playerName, len(dogs))
	for _, d := range dogs {
		out[strconv.Itoa(int(d.ID))] = playerName{Name: d.Name}
	}
	return out
}

func dirLetter(d model.Direction) string {
	switch d {
	case model.South:
		return "D"
	case model.West:
		return "L"
	case model.East:
		return "R"
	default:
		return "U"
	}
}

// parseMove "U/D/L/R" 为方向，"" 为停下
func parseMove(move string) (dir model.Direction, stop bool, ok bool) {
	switch move {
	case "U":
		return model.North, false, true
	case "D":
		return model.South, false, true
	case "L":
		return model.West, false, true
	case "R":
		return model.East, false, true
	case "":
		return model.North, true, true
	default:
		return model.North, false, false
	}
}
