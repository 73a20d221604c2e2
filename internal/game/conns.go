package game

import (
	"sync"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

// connections tracks the live sockets watching one session. The mutex also
// serializes writes; websocket connections do not tolerate concurrent
// writers.
type connections struct {
	mu    sync.Mutex
	conns map[string]*websocket.Conn
	log   *zap.Logger
}

func newConnections(log *zap.Logger) *connections {
	return &connections{
		conns: make(map[string]*websocket.Conn),
		log:   log,
	}
}

// add registers a socket. A client already holding a socket keeps it; the
// newcomer is refused.
func (c *connections) add(clientID string, conn *websocket.Conn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.conns[clientID]; exists {
		return false
	}
	c.conns[clientID] = conn
	return true
}

func (c *connections) remove(clientID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.conns, clientID)
}

func (c *connections) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.conns)
}

// sendTo writes one frame to a single client's socket.
func (c *connections) sendTo(clientID string, frame any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, ok := c.conns[clientID]
	if !ok {
		return
	}
	if err := conn.WriteJSON(frame); err != nil {
		c.log.Warn("dropping connection", zap.String("clientId", clientID), zap.Error(err))
		conn.Close()
		delete(c.conns, clientID)
	}
}

// send writes the frames, in order, to every registered socket. A failed
// write drops that socket.
func (c *connections) send(frames ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for clientID, conn := range c.conns {
		for _, frame := range frames {
			if err := conn.WriteJSON(frame); err != nil {
				c.log.Warn("dropping connection", zap.String("clientId", clientID), zap.Error(err))
				conn.Close()
				delete(c.conns, clientID)
				break
			}
		}
	}
}
