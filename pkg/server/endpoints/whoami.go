package endpoints

import (
	"net/http"

	"conduit-in-go/pkg/identity"
	"conduit-in-go/pkg/server"
	"conduit-in-go/pkg/server/middleware"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	Username  string `json:"username"`
	UserID    uint   `json:"user_id"`
	ProfileID uint   `json:"profile_id"`
}

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	tokenMiddleware := middleware.NewTokenAuthenticator(s.UsersStore)

	whoamiRouter := s.Router.PathPrefix("/whoami").Subrouter()
	whoamiRouter.Use(tokenMiddleware.Middleware)

	whoamiRouter.HandleFunc("", handleWhoami()).Methods("GET")
}

func handleWhoami() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		respondWithJSON(w, http.StatusOK, WhoamiResponse{
			Username:  caller.Username,
			UserID:    caller.UserID,
			ProfileID: caller.ProfileID,
		})
	}
}
