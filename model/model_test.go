package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogwalk/errors"
	"dogwalk/model"
)

func TestDogMoveDirectionDeterminesVelocitySign(t *testing.T) {
	testCases := []struct {
		name     string
		dir      model.Direction
		speed    float64
		expected model.Speed
	}{
		{name: "north", dir: model.North, speed: 2.5, expected: model.Speed{VX: 0, VY: -2.5}},
		{name: "south", dir: model.South, speed: 2.5, expected: model.Speed{VX: 0, VY: 2.5}},
		{name: "west", dir: model.West, speed: 1, expected: model.Speed{VX: -1, VY: 0}},
		{name: "east", dir: model.East, speed: 1, expected: model.Speed{VX: 1, VY: 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dog := model.Dog{Position: model.Position{X: 1, Y: 2}}
			dog.Move(tc.dir, tc.speed)

			assert.Equal(t, tc.expected, dog.Speed)
			assert.Equal(t, tc.dir, dog.Direction)
			assert.Equal(t, model.Position{X: 1, Y: 2}, dog.Position)
		})
	}
}

func TestDogStopIsIdempotent(t *testing.T) {
	dog := model.Dog{Position: model.Position{X: 3, Y: 4}, Direction: model.West}

	dog.Stop()
	dog.Stop()

	assert.True(t, dog.Speed.IsZero())
	assert.Equal(t, model.West, dog.Direction)
	assert.Equal(t, model.Position{X: 3, Y: 4}, dog.Position)
}

func TestRoadOrientation(t *testing.T) {
	h := model.NewHorizontalRoad(model.Point{X: 0, Y: 3}, 7)
	v := model.NewVerticalRoad(model.Point{X: 2, Y: 9}, 1)

	assert.True(t, h.IsHorizontal())
	assert.False(t, h.IsVertical())
	assert.Equal(t, model.Point{X: 7, Y: 3}, h.End())
	assert.True(t, v.IsVertical())
	assert.False(t, v.IsHorizontal())
	assert.Equal(t, model.Point{X: 2, Y: 1}, v.End())
}

func TestRoadContainsBand(t *testing.T) {
	road := model.NewHorizontalRoad(model.Point{X: 10, Y: 0}, 0)

	assert.True(t, road.Contains(model.Position{X: -0.4, Y: 0.4}))
	assert.True(t, road.Contains(model.Position{X: 10.4, Y: -0.4}))
	assert.False(t, road.Contains(model.Position{X: 10.5, Y: 0}))
	assert.False(t, road.Contains(model.Position{X: 5, Y: 0.41}))
}

func TestRoadIndexRasterizesRoads(t *testing.T) {
	roads := []model.Road{
		model.NewHorizontalRoad(model.Point{X: 0, Y: 0}, 3),
		model.NewVerticalRoad(model.Point{X: 3, Y: 2}, 0),
	}

	idx := model.NewRoadIndex(roads)

	assert.Equal(t, 6, idx.Len())
	corner, ok := idx.At(model.Point{X: 3, Y: 0})
	require.True(t, ok)
	require.Len(t, corner, 2)
	assert.True(t, corner[0].IsHorizontal(), "first registered road comes first")
	assert.True(t, corner[1].IsVertical())

	_, ok = idx.At(model.Point{X: 1, Y: 1})
	assert.False(t, ok)
}

func TestMapRejectsDuplicateOffice(t *testing.T) {
	m := model.NewMap("town", "Town")
	office := model.Office{ID: "o1", Position: model.Point{X: 1, Y: 1}, Offset: model.Offset{DX: 5, DY: 0}}

	require.NoError(t, m.AddOffice(office))
	err := m.AddOffice(model.Office{ID: "o1"})

	assert.True(t, errors.IsDuplicateEntity(err))
	assert.Equal(t, []model.Office{office}, m.Offices())
}

func TestGameRejectsDuplicateMap(t *testing.T) {
	game := model.NewGame()
	first := model.NewMap("town", "Town")

	require.NoError(t, game.AddMap(first))
	err := game.AddMap(model.NewMap("town", "Other Town"))

	assert.True(t, errors.IsDuplicateEntity(err))
	require.Len(t, game.Maps(), 1)
	assert.Equal(t, "Town", game.Maps()[0].Name())
	found, ok := game.FindMap("town")
	require.True(t, ok)
	assert.Same(t, first, found)
}

func TestGameFindMissing(t *testing.T) {
	game := model.NewGame()

	_, ok := game.FindMap("nowhere")
	assert.False(t, ok)
	_, ok = game.FindSession("nowhere")
	assert.False(t, ok)
}

func TestGameStartSessionsOnePerMapInOrder(t *testing.T) {
	game := model.NewGame()
	for _, id := range []model.MapID{"a", "b", "c"} {
		m := model.NewMap(id, string(id))
		m.AddRoad(model.NewHorizontalRoad(model.Point{}, 5))
		require.NoError(t, game.AddMap(m))
	}

	game.StartSessions(false)
	first := game.Sessions()
	game.StartSessions(false)

	require.Len(t, game.Sessions(), 3)
	for i, s := range game.Sessions() {
		assert.Same(t, game.Maps()[i], s.Map())
		assert.NotSame(t, first[i], s)
	}
	session, ok := game.FindSession("b")
	require.True(t, ok)
	assert.Equal(t, model.MapID("b"), session.Map().ID())
}

func TestGameDogIDsAreUniqueAcrossSessions(t *testing.T) {
	game := model.NewGame()
	for _, id := range []model.MapID{"a", "b"} {
		m := model.NewMap(id, string(id))
		m.AddRoad(model.NewHorizontalRoad(model.Point{}, 5))
		require.NoError(t, game.AddMap(m))
	}
	game.StartSessions(false)

	seen := map[model.DogID]bool{}
	for _, s := range game.Sessions() {
		for i := 0; i < 3; i++ {
			idx, err := s.AddDog("d")
			require.NoError(t, err)
			id := s.Dog(idx).ID
			assert.False(t, seen[id])
			seen[id] = true
		}
	}
}

func TestGameTickAdvancesEverySession(t *testing.T) {
	game := model.NewGame()
	for _, id := range []model.MapID{"a", "b"} {
		m := model.NewMap(id, string(id))
		m.AddRoad(model.NewHorizontalRoad(model.Point{}, 10))
		m.SetSpeed(2)
		require.NoError(t, game.AddMap(m))
	}
	game.StartSessions(false)
	var dogs []*model.Dog
	for _, s := range game.Sessions() {
		idx, err := s.AddDog("d")
		require.NoError(t, err)
		dog := s.Dog(idx)
		dog.Move(model.East, s.Speed())
		dogs = append(dogs, dog)
	}

	require.NoError(t, game.Tick(500))

	for _, dog := range dogs {
		assert.Equal(t, model.Position{X: 1, Y: 0}, dog.Position)
	}
}

func TestGameTickReportsFailingSession(t *testing.T) {
	game := model.NewGame()
	m := model.NewMap("a", "A")
	m.AddRoad(model.NewHorizontalRoad(model.Point{}, 10))
	require.NoError(t, game.AddMap(m))
	game.StartSessions(false)
	session, _ := game.FindSession("a")
	idx, err := session.AddDog("d")
	require.NoError(t, err)
	dog := session.Dog(idx)
	dog.Position = model.Position{X: 50, Y: 50}
	dog.Move(model.North, 1)

	err = game.Tick(100)

	assert.True(t, errors.IsInvariantViolation(err))
}
