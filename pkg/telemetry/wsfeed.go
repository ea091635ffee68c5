package telemetry

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"
)

// WSFeed streams samples to websocket clients, one JSON message per
// sample. It implements Sink.
type WSFeed struct {
	connsLock sync.RWMutex
	conns     map[*websocket.Conn]struct{}
}

// NewWSFeed creates a WSFeed.
func NewWSFeed() *WSFeed {
	return &WSFeed{conns: make(map[*websocket.Conn]struct{})}
}

// Handler returns the http.Handler accepting websocket clients.
func (f *WSFeed) Handler() http.Handler {
	return websocket.Handler(f.serve)
}

// Push implements Sink.
func (f *WSFeed) Push(s Sample) {
	payload, err := json.Marshal(&s)
	if err != nil {
		glog.Errorf("marshal sample: %v", err)
		return
	}
	f.connsLock.RLock()
	conns := make([]*websocket.Conn, 0, len(f.conns))
	for conn := range f.conns {
		conns = append(conns, conn)
	}
	f.connsLock.RUnlock()
	for _, conn := range conns {
		if err := websocket.Message.Send(conn, string(payload)); err != nil {
			glog.V(2).Infof("drop client %s: %v", conn.Request().RemoteAddr, err)
			f.remove(conn)
			conn.Close()
		}
	}
}

func (f *WSFeed) serve(conn *websocket.Conn) {
	glog.V(2).Infof("client connected %s", conn.Request().RemoteAddr)
	f.connsLock.Lock()
	f.conns[conn] = struct{}{}
	f.connsLock.Unlock()
	// drain until the client goes away
	io.Copy(ioutil.Discard, conn)
	f.remove(conn)
	glog.V(2).Infof("client disconnected %s", conn.Request().RemoteAddr)
}

func (f *WSFeed) remove(conn *websocket.Conn) {
	f.connsLock.Lock()
	delete(f.conns, conn)
	f.connsLock.Unlock()
}
