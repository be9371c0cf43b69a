package models

// RequestDetails is stamped into the request context by the middleware and
// picked up by the logger for per-request enrichment.
type RequestDetails struct {
	RequestID   string `json:"request_id"`
	IP          string `json:"ip"`
	UserAgent   string `json:"user_agent"`
	HTTPMethod  string `json:"http_method"`
	Path        string `json:"path"`
	RequestTime string `json:"request_time"`
}
