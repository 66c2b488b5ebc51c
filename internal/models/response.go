package models

// Result is the JSON body returned by the submission endpoints.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Status is the JSON body returned by the health endpoint.
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
