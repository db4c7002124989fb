package mux

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"twohundred-server/pkg/table"
)

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Error(err)
		return
	}
	defer resp.Body.Close()

	assert.Equal(t, statusCode, resp.StatusCode)
	if respObj != nil {
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(respObj))
	}
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	resp, err := http.Post(ts.URL+path, "application/json", body)
	if err != nil {
		t.Error(err)
		return
	}
	defer resp.Body.Close()

	assert.Equal(t, statusCode, resp.StatusCode)
	if respObj != nil {
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(respObj))
	}
}

func TestMux_getHealth(t *testing.T) {
	ts := httptest.NewServer(NewMux("1.2.3"))
	defer ts.Close()

	var health healthResponse
	assertGet(t, ts, "/health", &health, http.StatusOK)
	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, "1.2.3", health.Version)
}

func TestMux_postPlayer(t *testing.T) {
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	var player table.Player
	assertPost(t, ts, "/player", postPlayerPayload{DisplayName: "alice"}, &player, http.StatusCreated)
	assert.Equal(t, int64(1), player.ID)
	assert.Equal(t, "alice", player.DisplayName)

	var errResp errorResponse
	assertPost(t, ts, "/player", postPlayerPayload{DisplayName: "x"}, &errResp, http.StatusBadRequest)
	assert.Equal(t, "displayName must be 2-40 characters", errResp.Message)

	// bad JSON
	assertPost(t, ts, "/player", "{", &errResp, http.StatusBadRequest)
}

func TestMux_tableLifecycle(t *testing.T) {
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	var tbl table.Table
	assertPost(t, ts, "/table", nil, &tbl, http.StatusCreated)
	assert.NotEmpty(t, tbl.UUID)
	assert.NotEmpty(t, tbl.Name)

	assertGet(t, ts, "/table/00000000-0000-0000-0000-000000000000", nil, http.StatusNotFound)
	assertGet(t, ts, "/table/not-a-uuid", nil, http.StatusNotFound)

	var got getTableUUIDResponse
	assertGet(t, ts, "/table/"+tbl.UUID, &got, http.StatusOK)
	assert.Equal(t, tbl.UUID, got.UUID)
	assert.Equal(t, 0, len(got.Players))

	var player table.Player
	assertPost(t, ts, "/player", postPlayerPayload{DisplayName: "alice"}, &player, http.StatusCreated)

	var seated postSeatResponse
	assertPost(t, ts, fmt.Sprintf("/table/%s/seat", tbl.UUID), postSeatPayload{PlayerID: player.ID}, &seated, http.StatusCreated)
	assert.Equal(t, 0, seated.Seat)
	assert.Equal(t, player.ID, seated.Player.ID)

	var errResp errorResponse
	assertPost(t, ts, fmt.Sprintf("/table/%s/seat", tbl.UUID), postSeatPayload{PlayerID: player.ID}, &errResp, http.StatusBadRequest)
	assert.Equal(t, "player is already seated at this table", errResp.Message)

	assertPost(t, ts, fmt.Sprintf("/table/%s/seat", tbl.UUID), postSeatPayload{PlayerID: 99}, &errResp, http.StatusBadRequest)
	assert.Equal(t, "playerId is not a registered player: 99", errResp.Message)

	assertGet(t, ts, "/table/"+tbl.UUID, &got, http.StatusOK)
	assert.Equal(t, 1, len(got.Players))
}

func TestMux_wsRequiresKnownPlayer(t *testing.T) {
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	var tbl table.Table
	assertPost(t, ts, "/table", nil, &tbl, http.StatusCreated)

	assertGet(t, ts, fmt.Sprintf("/table/%s/ws", tbl.UUID), nil, http.StatusUnauthorized)
	assertGet(t, ts, fmt.Sprintf("/table/%s/ws?playerId=42", tbl.UUID), nil, http.StatusUnauthorized)
}
