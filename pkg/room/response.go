package room

import (
	"twohundred-server/pkg/playable"
	"twohundred-server/pkg/table"
)

// clientStatePlayer is a seated or connected player as reported to clients
type clientStatePlayer struct {
	*table.Player
	Seat        int  `json:"seat"`
	IsConnected bool `json:"isConnected"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
