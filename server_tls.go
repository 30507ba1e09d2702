//go:build !tinygo

package touchdeck

import (
	"golang.org/x/crypto/acme/autocert"
)

// ServeTLS serves the state mirror on host with a Let's Encrypt certificate
func (s *Server) ServeTLS(host string) error {
	return s.Serve(autocert.NewListener(host))
}
