package types

type Greeting struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp" format:"date-time"`
	Hostname  string `json:"hostname,omitempty"`
}

type HTTPError struct {
	Error string `json:"error"`
}
