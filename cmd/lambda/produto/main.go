package main

import (
	"context"
	"net/http"

	"produto-lookup-api/internal/config"
	"produto-lookup-api/internal/handlers"
	"produto-lookup-api/pkg/lambda"
	"produto-lookup-api/pkg/server"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var container *server.Container

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := lambda.FromAPIGateway(event)
	resp := container.ProductHandler.Handle(ctx, req)

	out, err := resp.ToAPIGateway()
	if err != nil {
		container.Logger.WithError(err).WithField("request_id", req.RequestID).Error("Failed to encode response")
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
			Body:       handlers.MessageFetchFailure + err.Error(),
		}, nil
	}

	return out, nil
}

func main() {
	awslambda.Start(handler)
}
