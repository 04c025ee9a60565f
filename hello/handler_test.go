package hello

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prognoshealth/hello-lambda/proxy"
)

func decodeBody(t *testing.T, response events.APIGatewayProxyResponse) map[string]interface{} {
	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(response.Body), &body))
	return body
}

func TestHandler_Handle(t *testing.T) {
	log, _ := test.NewNullLogger()
	h := New(log)

	response, err := h.Handle(context.Background(), map[string]interface{}{"a": 1})

	require.NoError(t, err)
	assert.Equal(t, 200, response.StatusCode)
	assert.Equal(t, map[string]string{"X-Powered-By": "AWS Lambda & serverless"}, response.Headers)
	assert.False(t, response.IsBase64Encoded)

	expected := map[string]interface{}{
		"message": "Go Serverless v1.x! Your function executed successfully!",
		"input":   map[string]interface{}{"a": float64(1)},
	}
	assert.Equal(t, expected, decodeBody(t, response))
}

func TestHandler_Handle_echoesInput(t *testing.T) {
	cases := []map[string]interface{}{
		{},
		{"httpMethod": "GET", "path": "/hello"},
		{"nested": map[string]interface{}{"list": []interface{}{"x", float64(2), true}}},
		{"weird": nil},
	}

	for _, c := range cases {
		log, _ := test.NewNullLogger()
		response, err := New(log).Handle(context.Background(), c)

		require.NoError(t, err)
		assert.Equal(t, c, decodeBody(t, response)["input"])
	}
}

func TestHandler_Handle_nilEvent(t *testing.T) {
	log, _ := test.NewNullLogger()

	response, err := New(log).Handle(context.Background(), nil)

	require.NoError(t, err)
	assert.JSONEq(t, `{"message": "`+Message+`", "input": null}`, response.Body)
}

func TestHandler_Handle_logsEvent(t *testing.T) {
	log, hook := test.NewNullLogger()
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
		AwsRequestID: "request-1",
	})

	_, err := New(log).Handle(ctx, map[string]interface{}{"a": 1})
	require.NoError(t, err)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "received: map[a:1]", entry.Message)
	assert.Equal(t, "request-1", entry.Data["aws_request_id"])
}

func TestHandler_Handle_unserializableEvent(t *testing.T) {
	log, hook := test.NewNullLogger()
	event := map[string]interface{}{"ch": make(chan int)}

	response, err := New(log).Handle(context.Background(), event)

	require.Error(t, err)
	assert.Equal(t, events.APIGatewayProxyResponse{}, response)

	var serr *proxy.SerializationError
	assert.True(t, errors.As(err, &serr))

	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "failed to serialize object", hook.LastEntry().Message)
}
