package proxy

import (
	"encoding/base64"
	"encoding/json"
	"io/ioutil"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SerializationError is returned by Build when the object body can not be
// converted to JSON. No response is produced when it occurs.
type SerializationError struct {
	Value interface{}
	Err   error
}

func (e *SerializationError) Error() string {
	return "failed to serialize object: " + e.Err.Error()
}

// Cause returns the underlying json error.
func (e *SerializationError) Cause() error {
	return e.Err
}

// Unwrap returns the underlying json error.
func (e *SerializationError) Unwrap() error {
	return e.Err
}

// ResponseBuilder accumulates the parts of an events.APIGatewayProxyResponse.
//
// Only one body source is expected to be set. When several are, the first
// match wins in the order raw, object, binary, regardless of the order of the
// setter calls. Without any body source the body is the empty string.
//
// Example:
//
//	response, err := proxy.NewResponseBuilder(log).
//		SetStatusCode(200).
//		SetHeaders(map[string]string{"Content-Type": "application/json"}).
//		SetObjectBody(map[string]string{"yolo": "it's true"}).
//		Build()
type ResponseBuilder struct {
	statusCode int
	headers    map[string]string

	rawBody    string
	rawSet     bool
	objectBody interface{}
	objectSet  bool
	binaryBody []byte
	binarySet  bool

	base64Encoded bool

	log logrus.FieldLogger
}

// NewResponseBuilder returns a builder with a 200 status code, no headers and
// no body. Serialization failures are logged to log; a nil log discards them.
func NewResponseBuilder(log logrus.FieldLogger) *ResponseBuilder {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(ioutil.Discard)
		log = discard
	}

	return &ResponseBuilder{
		statusCode: 200,
		headers:    map[string]string{},
		log:        log,
	}
}

// SetStatusCode sets the status code. It is not validated.
func (b *ResponseBuilder) SetStatusCode(statusCode int) *ResponseBuilder {
	b.statusCode = statusCode
	return b
}

// SetHeaders replaces the headers. They are not merged with earlier ones.
func (b *ResponseBuilder) SetHeaders(headers map[string]string) *ResponseBuilder {
	if headers == nil {
		headers = map[string]string{}
	}

	b.headers = headers
	return b
}

// SetRawBody sets a body that is used verbatim.
func (b *ResponseBuilder) SetRawBody(body string) *ResponseBuilder {
	b.rawBody = body
	b.rawSet = true
	return b
}

// SetObjectBody sets a body that is converted to JSON by Build.
func (b *ResponseBuilder) SetObjectBody(body interface{}) *ResponseBuilder {
	b.objectBody = body
	b.objectSet = true
	return b
}

// SetBinaryBody sets a body that is base64 encoded by Build. It also calls
// SetBase64Encoded(true); a later SetBase64Encoded(false) still overrides it.
func (b *ResponseBuilder) SetBinaryBody(body []byte) *ResponseBuilder {
	b.binaryBody = body
	b.binarySet = true
	return b.SetBase64Encoded(true)
}

// SetBase64Encoded sets the isBase64Encoded flag of the response.
//
// A base64 encoded response is only decoded by api gateway when
//  1. "Binary Media Types" are configured on the api
//  2. the request has an "Accept" header matching one of those types
func (b *ResponseBuilder) SetBase64Encoded(encoded bool) *ResponseBuilder {
	b.base64Encoded = encoded
	return b
}

// body resolves the body sources in priority order.
func (b *ResponseBuilder) body() (string, error) {
	switch {
	case b.rawSet:
		return b.rawBody, nil
	case b.objectSet:
		content, err := json.Marshal(b.objectBody)
		if err != nil {
			b.log.WithError(err).Error("failed to serialize object")
			return "", errors.WithStack(&SerializationError{Value: b.objectBody, Err: err})
		}

		return string(content), nil
	case b.binarySet:
		return base64.StdEncoding.EncodeToString(b.binaryBody), nil
	}

	return "", nil
}

// Build returns the response. The builder is left untouched so Build may be
// called again and will return an equal response.
//
// If the object body can not be serialized the failure is logged and a
// *SerializationError is returned along with an empty response, which must not
// be sent.
func (b *ResponseBuilder) Build() (events.APIGatewayProxyResponse, error) {
	body, err := b.body()
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	headers := make(map[string]string, len(b.headers))
	for k, v := range b.headers {
		headers[k] = v
	}

	return events.APIGatewayProxyResponse{
		StatusCode:      b.statusCode,
		Headers:         headers,
		Body:            body,
		IsBase64Encoded: b.base64Encoded,
	}, nil
}

// MustBuild is like Build but panics if the response can not be built.
func (b *ResponseBuilder) MustBuild() events.APIGatewayProxyResponse {
	response, err := b.Build()
	if err != nil {
		panic(err)
	}

	return response
}
