package graphql

import (
	"context"

	"employee-service/internal/auth"
)

// RequestContext carries per-request data from the transport layer into the
// resolvers. It replaces ad-hoc header lookups with one typed carrier.
type RequestContext struct {
	AuthHeader string       // raw Authorization header value, empty when the header was absent
	RequestID  string       // correlation id assigned by the transport
	Claims     *auth.Claims // verified caller identity, nil until a protected operation checks the token
}

type requestContextKey struct{}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// RequestContextFrom extracts the RequestContext from ctx. It returns nil
// when the transport did not attach one, which resolvers treat the same as
// a request without an Authorization header.
func RequestContextFrom(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}
