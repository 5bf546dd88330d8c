package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastReachesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	c := &Client{hub: hub, send: make(chan []byte, 4)}
	hub.Register(c)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	pid, aid := uuid.New(), uuid.New()
	hub.NotifyStaffingUpdated(pid, aid, "created")

	select {
	case msg := <-c.send:
		var evt StaffingUpdatedEvent
		require.NoError(t, json.Unmarshal(msg, &evt))
		assert.Equal(t, EventStaffingUpdated, evt.Type)
		assert.Equal(t, pid, evt.ProjectID)
		assert.Equal(t, aid, evt.AssignmentID)
		assert.Equal(t, "created", evt.Action)
	case <-time.After(time.Second):
		t.Fatal("no broadcast received")
	}

	hub.Unregister(c)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHub_UnregisterAfterShutdownDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	hub := NewHub(nil)
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	finished := make(chan struct{})
	go func() {
		// More disconnects than the unregister buffer holds.
		for i := 0; i < 200; i++ {
			hub.Unregister(&Client{hub: hub, send: make(chan []byte, 1)})
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Unregister blocked after hub shutdown")
	}
}

func TestHub_RegisterAfterShutdownClosesSend(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	hub := NewHub(nil)
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	c := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.Register(c)

	_, ok := <-c.send
	assert.False(t, ok)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_NilSafe(t *testing.T) {
	var hub *Hub
	hub.NotifyStaffingUpdated(uuid.New(), uuid.Nil, "deleted")
	assert.Equal(t, 0, hub.ClientCount())
}
