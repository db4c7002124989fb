package room

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"twohundred-server/pkg/playable"
	"twohundred-server/pkg/playable/twohundred"
	"twohundred-server/pkg/room/gamefactory"
	"twohundred-server/pkg/table"
)

type state int

const (
	stateClientEvent state = iota
	stateGameEvent
	stateGameEnded
)

// tickInterval is how often the run loop checks a tickable game
const tickInterval = time.Millisecond * 250

// Dealer is responsible for controlling the game at a single table
type Dealer struct {
	pitBoss *PitBoss
	table   *table.Table
	clients map[*Client]bool
	lock    sync.RWMutex
	game    playable.Playable

	// gameEvents is the domain event feed of the active game
	gameEvents <-chan *twohundred.Event

	logMessages []*playable.LogMessage

	nextGameTick time.Time

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, table *table.Table) *Dealer {
	return &Dealer{
		pitBoss:       pitBoss,
		table:         table,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	log := logrus.WithFields(logrus.Fields{
		"uuid": d.table.UUID,
		"name": d.table.Name,
	})

	log.Debug("creating dealer run loop")

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		// the channels are nil without an active game; a nil channel
		// never fires in the select
		var logChan <-chan []*playable.LogMessage
		if d.game != nil {
			logChan = d.game.LogChan()
		}

		select {
		case s := <-d.stateChanged:
			switch s {
			case stateClientEvent:
				d.sendPlayerData()
			case stateGameEvent:
				d.sendGameData()
			case stateGameEnded:
				d.sendGameEnded()
				d.sendPlayerData()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case messages := <-logChan:
			d.addLogMessages(messages)
			d.sendLogMessages(messages)
		case event := <-d.gameEvents:
			d.broadcast(&playable.Response{
				Key:   "event",
				Value: string(event.Type),
				Data:  event,
			})
		case <-ticker.C:
			d.tickGame(log)
		case <-d.close:
			log.Debug("terminating dealer run loop")
			return
		}
	}
}

// tickGame nudges a tickable game along
// NOTE: must only be called from the run loop
func (d *Dealer) tickGame(log logrus.FieldLogger) {
	game, ok := d.game.(playable.Tickable)
	if !ok {
		return
	}

	if !time.Now().After(d.nextGameTick) {
		return
	}
	d.nextGameTick = time.Now().Add(game.Interval())

	changed, err := game.Tick()
	if err != nil {
		log.WithError(err).Error("game tick failed")
		return
	}

	if changed {
		d.sendGameData()
	}

	d.checkGameOver(log)
}

// checkGameOver retires the game once it reports itself over
// NOTE: must only be called from the run loop
func (d *Dealer) checkGameOver(log logrus.FieldLogger) {
	if d.game == nil {
		return
	}

	details, isOver := d.game.GetEndOfGameDetails()
	if !isOver {
		return
	}

	log.WithFields(logrus.Fields{
		"game":    d.game.Name(),
		"winners": details.Winners,
		"scores":  details.FinalScores,
	}).Info("game over")

	d.game = nil
	d.gameEvents = nil
	d.stateChanged <- stateGameEnded
}

// AddClient adds a client
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.stateChanged <- stateClientEvent
	d.execInRunLoop <- func() {
		client.Send(&playable.Response{
			Key:  "logs",
			Data: d.logMessages,
		})

		if d.game == nil {
			return
		}

		gs, err := d.game.GetPlayerState(client.player.ID)
		if err != nil {
			logrus.WithError(err).Error("could not get player state")
			return
		}

		client.Send(gs)
	}
}

// RemoveClient removes a client
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients > 0 {
		d.stateChanged <- stateClientEvent
		return false
	}

	return true
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcast(msg interface{}) {
	for _, client := range d.Clients() {
		client.Send(msg)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameEnded() {
	d.broadcast(&playable.Response{
		Key: "gameEnded",
	})
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	if d.game == nil {
		return
	}

	for _, client := range d.Clients() {
		data, err := d.game.GetPlayerState(client.player.ID)
		if err != nil {
			logrus.WithError(err).Error("could not get player state")
			continue
		}

		client.Send(data)
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendPlayerData() {
	connected := make(map[int64]bool)
	for _, client := range d.Clients() {
		connected[client.player.ID] = true
	}

	players := d.table.GetPlayers()
	csPlayers := make([]*clientStatePlayer, len(players))
	for i, player := range players {
		csPlayers[i] = &clientStatePlayer{
			Player:      player,
			Seat:        i,
			IsConnected: connected[player.ID],
		}
	}

	d.broadcast(&playable.Response{
		Key:  "clientState",
		Data: csPlayers,
	})
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	switch msg.Action {
	case "createGame":
		d.execInRunLoop <- func() {
			if err := d.createGame(msg.Subject, msg.AdditionalData); err != nil {
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			c.Send(playable.OK(msg.Context))
		}
	case "terminateGame":
		d.execInRunLoop <- func() {
			if d.game == nil {
				c.Send(newErrorResponse(msg.Context, errors.New("there is no game in progress")))
				return
			}

			d.game = nil
			d.gameEvents = nil
			d.stateChanged <- stateGameEnded
			c.Send(playable.OK(msg.Context))
		}
	default:
		d.execInRunLoop <- func() {
			game := d.game
			if game == nil {
				logrus.WithField("msg", msg).Warn("unknown message")
				return
			}

			action, updateState, err := game.Action(c.player.ID, msg)
			if err != nil {
				logrus.WithError(err).WithField("client", c.String()).Error("could not perform action")
				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			if action != nil {
				action.Context = msg.Context
				c.Send(action)
			}

			if updateState {
				d.stateChanged <- stateGameEvent
			}

			d.checkGameOver(logrus.WithField("uuid", d.table.UUID))
		}
	}
}

// createGame starts a new game at the table
// NOTE: must only be called from the run loop
func (d *Dealer) createGame(name string, additionalData playable.AdditionalData) error {
	if d.game != nil {
		return errors.New("a game is already in progress")
	}

	if !d.table.IsFull() {
		return errors.New("the table does not have enough players")
	}

	factory, err := gamefactory.Get(name)
	if err != nil {
		return err
	}

	players := d.table.GetPlayers()
	playerIDs := make([]int64, len(players))
	for i, player := range players {
		playerIDs[i] = player.ID
	}

	logger := logrus.WithFields(logrus.Fields{
		"uuid": d.table.UUID,
		"game": name,
	})

	game, err := factory.CreateGame(logger, playerIDs, additionalData)
	if err != nil {
		return err
	}

	d.game = game
	d.nextGameTick = time.Time{}
	if g, ok := game.(*twohundred.Game); ok {
		d.gameEvents = g.Events()
	}

	d.stateChanged <- stateGameEvent
	return nil
}
