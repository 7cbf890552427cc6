package api

import (
	"net/http"

	"helping-hands/volunteerhub/internal/models/dtos/requests"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// postingFilter reads ?location=&skill=&start=&end= from the query string.
func postingFilter(r *http.Request) requests.PostingFilter {
	q := r.URL.Query()
	return requests.PostingFilter{
		Location: q.Get("location"),
		Skill:    q.Get("skill"),
		Start:    q.Get("start"),
		End:      q.Get("end"),
	}
}
