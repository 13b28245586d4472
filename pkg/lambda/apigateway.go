package lambda

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

// FromAPIGateway converts an API Gateway proxy event into a generic request
func FromAPIGateway(event events.APIGatewayProxyRequest) *Request {
	requestID := event.RequestContext.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		RequestID:   requestID,
	}
}

// ToAPIGateway converts the response into an API Gateway proxy response.
// String bodies are passed through, anything else is JSON encoded.
func (r *Response) ToAPIGateway() (events.APIGatewayProxyResponse, error) {
	headers := make(map[string]string, len(r.Headers))
	for k, v := range r.Headers {
		headers[k] = v
	}

	var body string
	switch b := r.Body.(type) {
	case nil:
	case string:
		body = b
	case []byte:
		body = string(b)
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return events.APIGatewayProxyResponse{}, fmt.Errorf("failed to marshal response body: %w", err)
		}
		body = string(encoded)
		if _, ok := headers["Content-Type"]; !ok {
			headers["Content-Type"] = "application/json"
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    headers,
		Body:       body,
	}, nil
}
