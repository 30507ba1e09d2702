package touchdeck

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/net/websocket"
)

// Server mirrors a thing's state to websocket peers.  The thing's control
// loop runs in Run; peers connect on /ws/ or are dialed with Dial.
type Server struct {
	http.Server
	*Bus
	injector *Injector
	thinger  Thinger
	user     string
	passwd   string
}

func NewServer(thinger Thinger) *Server {
	s := &Server{thinger: thinger}

	s.Bus = NewBus("server bus", nil, nil)
	s.Bus.Handle("", thingHandler(thinger))
	s.injector = NewInjector("server injector", s.Bus)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/", s.basicAuth(s.serveWebSocket))
	mux.HandleFunc("/state", s.basicAuth(s.serveState))
	s.Handler = mux

	return s
}

func (s *Server) BasicAuth(user, passwd string) {
	s.user, s.passwd = user, passwd
}

// Dial a websocket peer at rawURL, announcing the thing on connect.  Dial
// retries in the background until the process exits.
func (s *Server) Dial(user, passwd, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("dial %s: %w", rawURL, err)
	}
	ws := newWebSocket(u, "", s.Bus)
	go ws.Dial(user, passwd, s.thinger.Announce())
	return nil
}

// Run the thing's control loop.  Run does not return.
func (s *Server) Run() {
	s.thinger.Run(s.injector)
}

func (s *Server) serveWebSocket(w http.ResponseWriter, r *http.Request) {
	ws := newWebSocket(r.URL, r.RemoteAddr, s.Bus)
	serv := websocket.Server{Handler: websocket.Handler(ws.serve)}
	serv.ServeHTTP(w, r)
}

func (s *Server) serveState(w http.ResponseWriter, r *http.Request) {
	s.thinger.Lock()
	state, err := json.Marshal(s.thinger)
	s.thinger.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(state)
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(writer http.ResponseWriter, r *http.Request) {

		// skip basic authentication if no user
		if s.user == "" {
			next.ServeHTTP(writer, r)
			return
		}

		ruser, rpasswd, ok := r.BasicAuth()

		if ok {
			userHash := sha256.Sum256([]byte(s.user))
			passHash := sha256.Sum256([]byte(s.passwd))
			ruserHash := sha256.Sum256([]byte(ruser))
			rpassHash := sha256.Sum256([]byte(rpasswd))

			// https://www.alexedwards.net/blog/basic-authentication-in-go
			userMatch := (subtle.ConstantTimeCompare(userHash[:], ruserHash[:]) == 1)
			passMatch := (subtle.ConstantTimeCompare(passHash[:], rpassHash[:]) == 1)

			if userMatch && passMatch {
				next.ServeHTTP(writer, r)
				return
			}
		}

		writer.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
		http.Error(writer, "Unauthorized", http.StatusUnauthorized)
	})
}
