package http

import (
	"encoding/json"
	"net/http"

	"github.com/pratikupreti7/razorsnreviews-api/pkg/httputil"
)

// maxBodyBytes caps request bodies at 1MB.
const maxBodyBytes = 1 << 20

// decodeBody reads and decodes a JSON request body into dst. On failure it
// writes a 400 response and returns false, signaling the caller to return
// early.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return false
	}
	return true
}

// requireUserID extracts the authenticated user id injected by the auth
// middleware. A missing id means the route was mounted without the middleware;
// respond 401 rather than act as nobody.
func requireUserID(w http.ResponseWriter, userID string) bool {
	if userID == "" {
		httputil.WriteJSON(w, http.StatusUnauthorized, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "UNAUTHENTICATED", Message: "user not authenticated"},
		})
		return false
	}
	return true
}
