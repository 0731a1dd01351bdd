package dto

// ChatRequest payload for the keyword matcher.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse echoes the query alongside the matched reply.
type ChatResponse struct {
	Reply string `json:"reply"`
	Query string `json:"query"`
}
