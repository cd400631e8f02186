// Package httpapi exposes the search pipeline as a JSON HTTP endpoint.
package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"go.mau.fi/util/exhttp"

	"github.com/gooblox/gooblox/pkg/answer"
	"github.com/gooblox/gooblox/pkg/query"
	"github.com/gooblox/gooblox/pkg/search"
)

// SearchResponse is the JSON body returned by GET /search. The query field
// always echoes the caller's literal input; corrections are only visible via
// spellchecked_query.
type SearchResponse struct {
	Query             string          `json:"query"`
	SpellcheckedQuery string          `json:"spellchecked_query,omitempty"`
	Count             int             `json:"count"`
	Results           []search.Result `json:"results"`
	Message           string          `json:"message,omitempty"`
	Answer            string          `json:"answer,omitempty"`
}

// Searcher is the search capability the handler invokes.
type Searcher interface {
	Search(ctx context.Context, req search.Request) (*search.Response, error)
}

// Handler runs the request pipeline: normalize, resolve parameters, search,
// filter, extract an answer, assemble the response.
type Handler struct {
	searcher Searcher
	dict     query.Corrector
	answers  *answer.Extractor
}

func NewHandler(searcher Searcher, dict query.Corrector, answers *answer.Extractor) *Handler {
	return &Handler{searcher: searcher, dict: dict, answers: answers}
}

// HandleSearch serves GET /search.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := r.URL.Query()

	raw := params.Get("q")
	if strings.TrimSpace(raw) == "" {
		writeError(w, http.StatusBadRequest, "Missing query parameter 'q'")
		return
	}

	effective := query.Normalize(raw, h.dict)
	resolved, err := query.ResolveParams(
		params.Get("max_results"),
		params.Get("region"),
		params.Get("safesearch"),
		params.Get("timelimit"),
		effective.Text,
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	found, err := h.searcher.Search(ctx, search.Request{
		Query:      effective.Text,
		Count:      resolved.MaxResults,
		Region:     resolved.Region,
		SafeSearch: resolved.SafeSearch,
		TimeLimit:  resolved.TimeLimit,
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Search provider call failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	results := query.FilterResults(effective.Text, found.Results)
	if results == nil {
		results = []search.Result{}
	}

	response := SearchResponse{
		Query:   raw,
		Count:   len(results),
		Results: results,
	}
	if effective.Corrected {
		response.SpellcheckedQuery = effective.Text
	}
	if len(results) == 0 {
		// No results means no answer attempt.
		response.Message = "No results found for the given query."
	} else if h.answers != nil {
		response.Answer = h.answers.Extract(ctx, effective.Text, results)
	}

	exhttp.WriteJSONResponse(w, http.StatusOK, &response)
}

func writeError(w http.ResponseWriter, status int, message string) {
	exhttp.WriteJSONResponse(w, status, map[string]string{"error": message})
}
