package realtime

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Results are public; the transport-level origin check is left to the
	// CORS policy of the surrounding deployment.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub relays published tally snapshots to the websocket observers connected
// to this process. The Redis subscription bridges instances; the hub only
// tracks its own connections.
type Hub struct {
	client *redis.Client
	logger *logger.Logger

	mu      sync.Mutex
	clients map[int]map[*websocket.Conn]struct{}
}

// NewHub creates a hub on the shared Redis client
func NewHub(client *redis.Client, log *logger.Logger) *Hub {
	return &Hub{
		client:  client,
		logger:  log,
		clients: make(map[int]map[*websocket.Conn]struct{}),
	}
}

// Run subscribes to all election result channels and fans messages out to
// the connected observers. It blocks until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	pubsub := h.client.PSubscribe(ctx, channelPrefix+"*")
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			electionID, err := strconv.Atoi(strings.TrimPrefix(msg.Channel, channelPrefix))
			if err != nil {
				h.logger.Warnw("Ignoring message on malformed channel", "channel", msg.Channel)
				continue
			}
			h.broadcast(electionID, []byte(msg.Payload))
		}
	}
}

// broadcast writes one snapshot to every observer of an election. Write
// failures drop the connection; the client is expected to reconnect.
func (h *Hub) broadcast(electionID int, payload []byte) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients[electionID]))
	for conn := range h.clients[electionID] {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Debugw("Dropping live results observer", "election_id", electionID, "error", err)
			h.remove(electionID, conn)
			conn.Close()
		}
	}
}

func (h *Hub) add(electionID int, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[electionID] == nil {
		h.clients[electionID] = make(map[*websocket.Conn]struct{})
	}
	h.clients[electionID][conn] = struct{}{}
}

func (h *Hub) remove(electionID int, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients[electionID], conn)
	if len(h.clients[electionID]) == 0 {
		delete(h.clients, electionID)
	}
}

// ServeWS upgrades the request and keeps the connection registered until the
// peer goes away. Observers only receive; inbound frames are discarded.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, electionID int) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	h.add(electionID, conn)
	h.logger.Debugw("Live results observer connected", "election_id", electionID)

	go func() {
		defer func() {
			h.remove(electionID, conn)
			conn.Close()
			h.logger.Debugw("Live results observer disconnected", "election_id", electionID)
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return nil
}
