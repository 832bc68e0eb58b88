package chat

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
)

// sessionID derives a stable, anonymous quota key from request
// metadata. The same client fingerprint always maps to the same
// session; it is not an authenticated identity.
func sessionID(r *http.Request) string {
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		host = h
	}

	sum := sha256.Sum256([]byte(host + "|" + r.UserAgent()))
	return hex.EncodeToString(sum[:8])
}
