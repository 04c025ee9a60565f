// Package proxy provides utilities for writing aws lambda functions that act as
// aws api gateway proxy integrations. Specifically it assists in building the
// events.APIGatewayProxyResponse returned to the gateway from a status code,
// headers and exactly one of a raw, object (json) or binary (base64) body.
//
// The builder is designed to be as simplistic as possible and is not feature
// rich.
package proxy
