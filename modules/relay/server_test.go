package relay

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/specialistvlad/eventbinder/internal/event"
	"github.com/stretchr/testify/require"
	enginetransports "github.com/zishang520/engine.io/v2/transports"
	"github.com/zishang520/engine.io/v2/types"
	socketserver "github.com/zishang520/socket.io/v2/socket"
)

// groundStation is an in-process socket.io server recording relayed messages.
type groundStation struct {
	url          string
	received     chan Message
	disconnected chan struct{}
}

func startGroundStation(t *testing.T, emitEvent string) *groundStation {
	t.Helper()

	gs := &groundStation{
		received:     make(chan Message, 8),
		disconnected: make(chan struct{}),
	}
	var once sync.Once

	opts := socketserver.DefaultServerOptions()
	opts.SetTransports(types.NewSet(enginetransports.POLLING, enginetransports.WEBSOCKET))
	io := socketserver.NewServer(nil, opts)
	io.On("connection", func(clients ...any) {
		client := clients[0].(*socketserver.Socket)
		client.On(emitEvent, func(args ...any) {
			if len(args) == 0 {
				return
			}
			raw, err := json.Marshal(args[0])
			if err != nil {
				return
			}
			var msg Message
			if err := json.Unmarshal(raw, &msg); err == nil {
				gs.received <- msg
			}
		})
		client.On("disconnect", func(...any) {
			once.Do(func() { close(gs.disconnected) })
		})
	})

	ts := httptest.NewServer(io.ServeHandler(nil))
	t.Cleanup(func() {
		io.Close(nil)
		ts.Close()
	})
	gs.url = ts.URL + "/socket.io/"
	return gs
}

func (gs *groundStation) next(t *testing.T) Message {
	t.Helper()
	select {
	case msg := <-gs.received:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a relayed message")
		return Message{}
	}
}

func TestConnect_RelaysBoundEventsToServer(t *testing.T) {
	t.Parallel()

	gs := startGroundStation(t, defaultEmitEvent)

	r, err := Connect(context.Background(), "monitor", &Input{URL: gs.url, Timeout: "5s"})
	require.NoError(t, err)

	source := event.New(nil)
	require.NoError(t, r.Bind(source, 4, 40))
	require.NoError(t, r.Bind(source, 5, 50))

	source.Active(4)
	require.Equal(t, Message{Module: "monitor", Event: 40}, gs.next(t))
	source.Active(5)
	require.Equal(t, Message{Module: "monitor", Event: 50}, gs.next(t))

	require.NoError(t, r.Close())
	select {
	case <-gs.disconnected:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not observe the relay disconnecting")
	}
}

func TestConnect_CustomEmitEvent(t *testing.T) {
	t.Parallel()

	gs := startGroundStation(t, "mode_change")

	r, err := Connect(context.Background(), "monitor", &Input{URL: gs.url, EmitEvent: "mode_change", Timeout: "5s"})
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })

	r.Active(7)
	require.Equal(t, Message{Module: "monitor", Event: 7}, gs.next(t))
}

func TestConnect_FailsWithoutServer(t *testing.T) {
	t.Parallel()

	// Reserve a port, then close it so nothing is listening.
	ts := httptest.NewServer(nil)
	url := ts.URL + "/socket.io/"
	ts.Close()

	_, err := Connect(context.Background(), "monitor", &Input{URL: url, Timeout: "500ms"})
	require.Error(t, err)
}
