package watch_test

import (
	"testing"

	"vestuario/internal/watch"

	"github.com/stretchr/testify/assert"
)

func TestHubNotifySubscriber(t *testing.T) {
	hub := watch.NewHub()
	ch, cancel := hub.Subscribe("u1", watch.Players)
	defer cancel()

	hub.Notify("u1", watch.Players)

	select {
	case <-ch:
	default:
		t.Fatal("expected a tick after Notify")
	}
}

func TestHubIsolatesUsersAndCollections(t *testing.T) {
	hub := watch.NewHub()
	players, cancelPlayers := hub.Subscribe("u1", watch.Players)
	defer cancelPlayers()
	matches, cancelMatches := hub.Subscribe("u1", watch.Matches)
	defer cancelMatches()
	other, cancelOther := hub.Subscribe("u2", watch.Players)
	defer cancelOther()

	hub.Notify("u1", watch.Players)

	assert.Len(t, players, 1)
	assert.Len(t, matches, 0)
	assert.Len(t, other, 0)
}

func TestHubCoalescesTicks(t *testing.T) {
	hub := watch.NewHub()
	ch, cancel := hub.Subscribe("u1", watch.Trainings)
	defer cancel()

	// An undrained subscriber never blocks Notify and holds at most one tick.
	hub.Notify("u1", watch.Trainings)
	hub.Notify("u1", watch.Trainings)
	hub.Notify("u1", watch.Trainings)

	assert.Len(t, ch, 1)
	<-ch
	assert.Len(t, ch, 0)
}

func TestHubCancelClosesChannel(t *testing.T) {
	hub := watch.NewHub()
	ch, cancel := hub.Subscribe("u1", watch.Players)

	cancel()

	_, open := <-ch
	assert.False(t, open)

	// Notifying after cancel must not panic or send on the closed channel.
	hub.Notify("u1", watch.Players)
}
