package main

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/merliot/touchdeck/peer"
)

type envMsg struct {
	Path        string
	Temperature float32
	Humidity    float32
}

// wsSender pushes env msgs to a touchdeck server.  The server drops
// connections that go quiet, so a "ping" text msg goes out between
// readings.
type wsSender struct {
	conn *websocket.Conn
	mu   sync.Mutex
	done chan struct{}
}

func dialWS(url, user, passwd string) (*wsSender, error) {
	header := http.Header{}
	if user != "" {
		req, _ := http.NewRequest("GET", url, nil)
		req.SetBasicAuth(user, passwd)
		header = req.Header
	}
	d := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := d.Dial(url, header)
	if err != nil {
		return nil, err
	}
	w := &wsSender{conn: conn, done: make(chan struct{})}
	go w.readLoop()
	go w.pingLoop(2 * time.Second)
	return w, nil
}

func (w *wsSender) Send(e peer.Env) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(envMsg{Path: "env", Temperature: e.Temperature, Humidity: e.Humidity})
}

// readLoop drains whatever the server sends (pongs, state updates)
func (w *wsSender) readLoop() {
	for {
		if _, _, err := w.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (w *wsSender) pingLoop(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-w.done:
			return
		case <-t.C:
			w.mu.Lock()
			err := w.conn.WriteMessage(websocket.TextMessage, []byte("ping"))
			w.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

func (w *wsSender) Close() {
	close(w.done)
	w.conn.Close()
}
