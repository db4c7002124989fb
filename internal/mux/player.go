package mux

import (
	"errors"
	"net/http"
	"regexp"
)

var displayNameRx = regexp.MustCompile(`\w`)

type postPlayerPayload struct {
	DisplayName string `json:"displayName"`
	IsBot       bool   `json:"isBot"`
}

func (m *Mux) postPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postPlayerPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if !displayNameRx.MatchString(pp.DisplayName) || len(pp.DisplayName) < 2 || len(pp.DisplayName) > 40 {
			writeJSONError(w, http.StatusBadRequest, errors.New("displayName must be 2-40 characters"))
			return
		}

		player := m.store.CreatePlayer(pp.DisplayName, pp.IsBot)
		writeJSON(w, http.StatusCreated, player)
	}
}
