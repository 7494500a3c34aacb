package endpoints

import (
	"net/http"

	"conduit-in-go/pkg/server"
	"conduit-in-go/pkg/server/store"
)

// TagsResponse represents the response from the /tags endpoint
type TagsResponse struct {
	Tags []string `json:"tags"`
}

// RegisterTagsEndpoints registers the /tags endpoints
func RegisterTagsEndpoints(s *server.Server) {
	tags := s.TagsStore

	s.Router.HandleFunc("/tags", handleListTags(tags)).Methods("GET")
}

func handleListTags(tags store.TagsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := tags.ListTags()
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list tags")
			return
		}

		response := TagsResponse{Tags: make([]string, 0, len(result))}
		for _, tag := range result {
			response.Tags = append(response.Tags, tag.Tag)
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}
