package endpoints

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gorilla/mux"

	"conduit-in-go/pkg/identity"
)

// testIdentity is the default authenticated caller used across tests.
var testIdentity = &identity.Identity{
	UserID:    7,
	ProfileID: 3,
	Username:  "jake",
}

func newRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req
}

func withIdentity(req *http.Request, caller *identity.Identity) *http.Request {
	return req.WithContext(identity.Set(req.Context(), caller))
}

func withSlug(req *http.Request, slug string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"slug": slug})
}
