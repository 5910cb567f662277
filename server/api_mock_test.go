package server_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/multierr"

	"dogwalk/app"
	"dogwalk/errors"
	"dogwalk/model"
	"dogwalk/server"
	servermock "dogwalk/server/mock"
)

var testToken = app.Token(strings.Repeat("ab", app.TokenLength/2))

func serve(t *testing.T, game server.GameAPI, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	server.New(server.Config{}, game, nil).Handler().ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Code
}

func TestTickInvariantFailureIsInternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	game := servermock.NewMockGameAPI(ctrl)

	game.EXPECT().
		Tick(int64(100)).
		Return(multierr.Combine(
			errors.InvariantViolationf("dog 1 is off road"),
			errors.InvariantViolationf("dog 2 is off road"),
		))

	rec := serve(t, game, httptest.NewRequest(http.MethodPost, "/api/v1/game/tick", strings.NewReader(`{"timeDelta":100}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internalError", errorCode(t, rec))
}

func TestStateForwardsSessionLookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	game := servermock.NewMockGameAPI(ctrl)
	player := &app.Player{ID: 3, Token: testToken, MapID: "gone"}

	game.EXPECT().FindByToken(testToken).Return(player, true)
	game.EXPECT().Dogs(player).Return(nil, errors.NotFoundf("session for map %q", "gone"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/game/state", nil)
	req.Header.Set("Authorization", "Bearer "+string(testToken))
	rec := serve(t, game, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "mapNotFound", errorCode(t, rec))
}

func TestActionDispatch(t *testing.T) {
	testCases := []struct {
		name   string
		move   string
		expect func(game *servermock.MockGameAPIMockRecorder, player *app.Player)
	}{
		{
			name: "up",
			move: "U",
			expect: func(game *servermock.MockGameAPIMockRecorder, player *app.Player) {
				game.Move(player, model.North).Return(nil)
			},
		},
		{
			name: "down",
			move: "D",
			expect: func(game *servermock.MockGameAPIMockRecorder, player *app.Player) {
				game.Move(player, model.South).Return(nil)
			},
		},
		{
			name: "left",
			move: "L",
			expect: func(game *servermock.MockGameAPIMockRecorder, player *app.Player) {
				game.Move(player, model.West).Return(nil)
			},
		},
		{
			name: "right",
			move: "R",
			expect: func(game *servermock.MockGameAPIMockRecorder, player *app.Player) {
				game.Move(player, model.East).Return(nil)
			},
		},
		{
			name: "stop",
			move: "",
			expect: func(game *servermock.MockGameAPIMockRecorder, player *app.Player) {
				game.Stop(player).Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			game := servermock.NewMockGameAPI(ctrl)
			player := &app.Player{ID: 1, Token: testToken, MapID: "town"}

			game.EXPECT().FindByToken(testToken).Return(player, true)
			tc.expect(game.EXPECT(), player)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/game/player/action", strings.NewReader(`{"move":"`+tc.move+`"}`))
			req.Header.Set("Authorization", "Bearer "+string(testToken))
			req.Header.Set("Content-Type", "application/json")
			rec := serve(t, game, req)

			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}

func TestJoinDoesNotReachGameOnBadInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	game := servermock.NewMockGameAPI(ctrl)

	rec := serve(t, game, httptest.NewRequest(http.MethodPost, "/api/v1/game/join", strings.NewReader(`{"userName":"  ","mapId":"town"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalidArgument", errorCode(t, rec))
}

func TestJoinErrorStatusFollowsErrorCode(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "duplicate entity", err: errors.DuplicateEntityf("dog %q", "Rex"), status: http.StatusConflict, code: "conflict"},
		{name: "invalid argument", err: errors.InvalidArgument("name too long"), status: http.StatusBadRequest, code: "invalidArgument"},
		{name: "not found", err: errors.NotFoundf("session %q", "town"), status: http.StatusNotFound, code: "mapNotFound"},
		{name: "invariant violation", err: errors.InvariantViolationf("map %q has no roads", "town"), status: http.StatusInternalServerError, code: "internalError"},
		{name: "plain error", err: fmt.Errorf("boom"), status: http.StatusInternalServerError, code: "internalError"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			game := servermock.NewMockGameAPI(ctrl)
			session := model.NewGameSession(model.NewMap("town", "Town"), false, nil)

			game.EXPECT().FindSession(model.MapID("town")).Return(session, true)
			game.EXPECT().AddPlayer("Rex", session).Return(nil, tc.err)

			rec := serve(t, game, httptest.NewRequest(http.MethodPost, "/api/v1/game/join", strings.NewReader(`{"userName":"Rex","mapId":"town"}`)))

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.code, errorCode(t, rec))
		})
	}
}
