package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/chronos-planner/internal/config"
	"github.com/saulo-duarte/chronos-planner/internal/container"
	"github.com/saulo-duarte/chronos-planner/internal/router"
)

var adapter *httpadapter.HandlerAdapter

func init() {
	cfg := config.Load()

	c, err := container.New(context.Background(), cfg)
	if err != nil {
		config.Logger().WithError(err).Fatal("Failed to build container")
	}
	adapter = httpadapter.New(router.FromContainer(c))
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
