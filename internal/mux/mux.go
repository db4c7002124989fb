package mux

import (
	"context"
	"net/http"
	"strconv"

	gmux "github.com/gorilla/mux"

	"twohundred-server/pkg/room"
	"twohundred-server/pkg/table"
)

type ctxKey int

const (
	ctxPlayerKey ctxKey = iota
	ctxTableKey
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
	store   *table.Store
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	pitBoss := room.NewPitBoss()
	pitBoss.StartShift()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
		store:   table.NewStore(),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/player").Handler(this.postPlayer())
	r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())

	tr := r.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	tr.Use(this.tableMiddleware)

	tr.Methods(http.MethodGet).Path("").Handler(this.getTableUUID())
	tr.Methods(http.MethodPost).Path("/seat").Handler(this.postTableUUIDSeat())

	wr := tr.NewRoute().Subrouter()
	wr.Use(this.playerMiddleware)
	wr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableUUIDWS())

	return this
}

// playerMiddleware resolves the playerId request value to a registered player
func (m *Mux) playerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.FormValue("playerId"), 10, 64)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		player, err := m.store.GetPlayer(id)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxPlayerKey, player)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := gmux.Vars(r)["uuid"]
		tbl, err := m.store.GetTable(uuid)
		if err != nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxTableKey, tbl)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
