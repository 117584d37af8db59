package handlers

import "net/http"

// welcomeBody is the HTML banner served at the service root.
const welcomeBody = "<h2>Welcome to the Todo API server!</h2>"

// Welcome handles GET /. It returns a small HTML banner identifying the
// service; no handler state is needed.
func Welcome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(welcomeBody))
}
