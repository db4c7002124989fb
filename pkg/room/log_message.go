package room

import (
	"twohundred-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages adds log messages to the table history
// NOTE: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

// sendLogMessages sends the messages to every connected client
// NOTE: this must only be called from within the run loop
func (d *Dealer) sendLogMessages(messages []*playable.LogMessage) {
	d.broadcast(&playable.Response{
		Key:  "logs",
		Data: messages,
	})
}
