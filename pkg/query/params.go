package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidParameter marks client errors that surface as HTTP 400.
var ErrInvalidParameter = errors.New("invalid parameter")

const (
	DefaultMaxResults = 5
	// Population-style queries fetch more results to improve the odds of
	// finding a numeric snippet later.
	populationMinResults = 20

	RegionDefault   = "us-en"
	RegionWorldwide = "wt-wt"
)

// Params are the resolved search parameters for one request.
type Params struct {
	MaxResults int
	Region     string
	SafeSearch string
	TimeLimit  string
}

// ResolveParams validates the raw query-string inputs and applies derived
// heuristics. Pure computation, no I/O.
func ResolveParams(maxResults, region, safeSearch, timeLimit, effective string) (Params, error) {
	params := Params{
		MaxResults: DefaultMaxResults,
		SafeSearch: "moderate",
		TimeLimit:  strings.TrimSpace(timeLimit),
	}

	if raw := strings.TrimSpace(maxResults); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Params{}, fmt.Errorf("%w: max_results must be a positive integer", ErrInvalidParameter)
		}
		params.MaxResults = n
	}

	if raw := strings.TrimSpace(safeSearch); raw != "" {
		switch level := strings.ToLower(raw); level {
		case "on", "moderate", "off":
			params.SafeSearch = level
		default:
			return Params{}, fmt.Errorf("%w: safesearch must be 'on', 'moderate', or 'off'", ErrInvalidParameter)
		}
	}

	if raw := strings.TrimSpace(region); raw != "" {
		params.Region = raw
	} else {
		params.Region = InferRegion(effective)
	}

	if strings.Contains(strings.ToLower(effective), "population") && params.MaxResults < populationMinResults {
		params.MaxResults = populationMinResults
	}

	return params, nil
}

// InferRegion picks a worldwide region for queries in non-Latin scripts and
// the US English default otherwise.
func InferRegion(effective string) string {
	for _, r := range effective {
		if r > 127 {
			return RegionWorldwide
		}
	}
	return RegionDefault
}
