package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/prognoshealth/hello-lambda/hello"
	"github.com/prognoshealth/hello-lambda/lambdautils"
)

func main() {
	log := lambdautils.NewLogger(lambdautils.LoadConfig())
	lambda.Start(hello.New(log).Handle)
}
