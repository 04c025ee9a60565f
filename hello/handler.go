// Package hello implements the greeting lambda: it logs the triggering event
// and echoes it back inside a json api gateway proxy response.
package hello

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/prognoshealth/hello-lambda/lambdautils"
	"github.com/prognoshealth/hello-lambda/proxy"
)

const (
	// Message is the greeting returned by every invocation.
	Message = "Go Serverless v1.x! Your function executed successfully!"

	// PoweredBy is the value of the X-Powered-By response header.
	PoweredBy = "AWS Lambda & serverless"
)

// Response is the json body of the response.
type Response struct {
	Message string                 `json:"message"`
	Input   map[string]interface{} `json:"input"`
}

// Handler handles a single invocation. It holds no state between invocations.
type Handler struct {
	log logrus.FieldLogger
}

// New returns a Handler logging to log.
func New(log logrus.FieldLogger) *Handler {
	return &Handler{log: log}
}

// Handle logs the event and returns a 200 response echoing it. The event is
// not validated. An error is only returned when the response body can't be
// serialized, in which case the invocation fails.
func (h *Handler) Handle(ctx context.Context, event map[string]interface{}) (events.APIGatewayProxyResponse, error) {
	meta := lambdautils.GetLambdaMetaData(ctx)
	h.log.WithFields(meta.Fields()).Infof("received: %v", event)

	response, err := proxy.NewResponseBuilder(h.log).
		SetStatusCode(200).
		SetObjectBody(Response{Message: Message, Input: event}).
		SetHeaders(map[string]string{"X-Powered-By": PoweredBy}).
		Build()
	if err != nil {
		return events.APIGatewayProxyResponse{}, errors.Wrap(err, "failed building response")
	}

	return response, nil
}
