package search

// Request represents a normalized web search request.
type Request struct {
	Query      string
	Count      int
	Region     string
	SafeSearch string
	TimeLimit  string
}

// Result is a normalized search result. Provider ordering is preserved.
type Result struct {
	Title string `json:"title"`
	Href  string `json:"href"`
	Body  string `json:"body"`
}

// Response is a normalized search response.
type Response struct {
	Query    string
	Provider string
	Count    int
	TookMs   int64
	Results  []Result
	// Ignored lists request fields the provider could not honor.
	Ignored []string
}
