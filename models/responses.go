package models

// ValidationErrors is the 400 response body: one human-readable message per
// violated field or rule.
type ValidationErrors struct {
	Errors []string `json:"errors"`
}

// APIMessage is the generic JSON error envelope used for authentication and
// authorization failures and the route-not-found fallback.
type APIMessage struct {
	Message string `json:"message"`
}

// APIServerError is the top-level error handler's 5xx body. ErrorDetail is
// always an empty object so that internals are never leaked to clients.
type APIServerError struct {
	Message     string   `json:"message"`
	ErrorDetail struct{} `json:"error"`
}
