package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/saulo-duarte/quiz-lambda/internal/container"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		config.Logger.WithError(err).Fatal("Invalid configuration")
	}

	ctr, err := container.New(context.Background(), settings)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to build container")
	}

	adapter := httpadapter.New(ctr.Router)
	lambda.Start(adapter.ProxyWithContext)
}
