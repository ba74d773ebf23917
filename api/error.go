package api

type Error struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}
