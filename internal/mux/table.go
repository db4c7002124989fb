package mux

import (
	"errors"
	"net/http"
	"strconv"

	"twohundred-server/pkg/table"
)

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tbl := m.store.CreateTable()
		writeJSON(w, http.StatusCreated, tbl)
	}
}

type getTableUUIDResponse struct {
	*table.Table
	Players []*table.Player `json:"players"`
}

func (m *Mux) getTableUUID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tbl := r.Context().Value(ctxTableKey).(*table.Table)
		writeJSON(w, http.StatusOK, getTableUUIDResponse{
			Table:   tbl,
			Players: tbl.GetPlayers(),
		})
	})
}

type postSeatPayload struct {
	PlayerID int64 `json:"playerId"`
}

type postSeatResponse struct {
	Seat   int           `json:"seat"`
	Player *table.Player `json:"player"`
}

func (m *Mux) postTableUUIDSeat() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var pp postSeatPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		player, err := m.store.GetPlayer(pp.PlayerID)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, errors.New("playerId is not a registered player: "+strconv.FormatInt(pp.PlayerID, 10)))
			return
		}

		tbl := r.Context().Value(ctxTableKey).(*table.Table)
		seat, err := tbl.AddPlayer(player)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusCreated, postSeatResponse{
			Seat:   seat,
			Player: player,
		})
	})
}
