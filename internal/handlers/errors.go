package handlers

// Response messages returned to callers
const (
	MessageBadRequest   = "Bad Request: Either id, nome, or categoria query parameters must be provided."
	MessageNotFound     = "Product not found."
	MessageFetchFailure = "Error fetching data: "
)

func fetchFailureMessage(err error) string {
	return MessageFetchFailure + err.Error()
}
