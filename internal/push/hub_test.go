package push

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hubFixture struct {
	hub    *Hub
	server *httptest.Server
	done   chan struct{}
}

func newHubFixture(t *testing.T) *hubFixture {
	t.Helper()
	f := &hubFixture{hub: NewHub(quietLogger()), done: make(chan struct{})}
	go f.hub.Run(f.done)

	upgrader := websocket.Upgrader{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		var topics []string
		if q := r.URL.Query().Get("topics"); q != "" {
			topics = strings.Split(q, ",")
		}
		client := NewClient(f.hub, conn, r.RemoteAddr, topics)
		f.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	}))

	t.Cleanup(func() {
		f.server.Close()
		close(f.done)
	})
	return f
}

func (f *hubFixture) dial(t *testing.T, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func (f *hubFixture) waitForClients(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return f.hub.ClientCount() == n }, 2*time.Second, 5*time.Millisecond)
}

func TestHub_BroadcastReachesSubscribers(t *testing.T) {
	f := newHubFixture(t)
	sub := f.dial(t, "topics=match_update")
	f.waitForClients(t, 1)

	require.NoError(t, f.hub.BroadcastToTopic(TopicMatchUpdate, TopicMatchUpdate, map[string]int{"runs": 45}))

	msg := readMessage(t, sub)
	assert.Equal(t, TopicMatchUpdate, msg.Topic)
	assert.JSONEq(t, `{"runs":45}`, string(msg.Data))
}

func TestHub_TopicFiltering(t *testing.T) {
	f := newHubFixture(t)
	live := f.dial(t, "topics=live_simulation")
	all := f.dial(t, "topics=*")
	f.waitForClients(t, 2)

	require.NoError(t, f.hub.BroadcastToTopic(TopicMatchUpdate, TopicMatchUpdate, "push"))
	require.NoError(t, f.hub.BroadcastToTopic(TopicLiveSimulation, "delivery", "sim"))

	// the wildcard client sees both, in order
	assert.Equal(t, TopicMatchUpdate, readMessage(t, all).Topic)
	assert.Equal(t, TopicLiveSimulation, readMessage(t, all).Topic)

	// the live client only sees its own topic
	msg := readMessage(t, live)
	assert.Equal(t, TopicLiveSimulation, msg.Topic)
	assert.Equal(t, "delivery", msg.Type)
}

func TestHub_RetainedStateOnConnect(t *testing.T) {
	f := newHubFixture(t)
	require.NoError(t, f.hub.BroadcastToTopic(TopicMatchUpdate, TopicMatchUpdate, map[string]string{"overs": "5.2"}))

	late := f.dial(t, "topics=match_update")
	msg := readMessage(t, late)
	assert.JSONEq(t, `{"overs":"5.2"}`, string(msg.Data))
}

func TestHub_SubscribeMessageReplaysRetained(t *testing.T) {
	f := newHubFixture(t)
	require.NoError(t, f.hub.BroadcastToTopic(TopicMatchUpdate, TopicMatchUpdate, 1))
	require.NoError(t, f.hub.BroadcastToTopic(TopicMatchUpdate, TopicMatchUpdate, 2))

	conn := f.dial(t, "")
	f.waitForClients(t, 1)
	require.NoError(t, conn.WriteJSON(Subscription{Action: "subscribe", Topics: []string{TopicMatchUpdate}}))

	msg := readMessage(t, conn)
	assert.Equal(t, "2", string(msg.Data), "only the latest state is retained")

	require.NoError(t, conn.WriteJSON(Subscription{Action: "unsubscribe", Topics: []string{TopicMatchUpdate}}))
	require.Eventually(t, func() bool {
		f.hub.mu.RLock()
		defer f.hub.mu.RUnlock()
		for c := range f.hub.clients {
			return !c.IsSubscribedTo(TopicMatchUpdate)
		}
		return false
	}, time.Second, 5*time.Millisecond)
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	f := newHubFixture(t)
	conn := f.dial(t, "topics=*")
	f.waitForClients(t, 1)

	conn.Close()
	f.waitForClients(t, 0)

	assert.NoError(t, f.hub.BroadcastToTopic(TopicMatchUpdate, TopicMatchUpdate, json.RawMessage(`{}`)))
}

func TestClient_IsSubscribedTo(t *testing.T) {
	c := NewClient(nil, nil, "c1", []string{TopicLiveSimulation})
	assert.True(t, c.IsSubscribedTo(TopicLiveSimulation))
	assert.False(t, c.IsSubscribedTo(TopicMatchUpdate))

	wild := NewClient(nil, nil, "c2", []string{"*"})
	assert.True(t, wild.IsSubscribedTo(TopicMatchUpdate))
}
