package graphql

import (
	"context"
	"fmt"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

// Engine holds the compiled schema and executes requests against it
type Engine struct {
	schema graphql.Schema
	log    *zap.Logger
}

// NewEngine compiles the schema once at startup. A schema that fails to
// compile is a programming error, so construction fails rather than
// deferring to the first request.
func NewEngine(r *Resolver, log *zap.Logger) (*Engine, error) {
	schema, err := buildSchema(r)
	if err != nil {
		return nil, fmt.Errorf("building graphql schema: %w", err)
	}

	return &Engine{
		schema: schema,
		log:    log,
	}, nil
}

// Execute runs a single GraphQL request. Errors raised by resolvers are
// folded into the result rather than returned, so the transport always has
// a well-formed response to serialize.
func (e *Engine) Execute(ctx context.Context, query, operationName string, variables map[string]interface{}) *graphql.Result {
	result := graphql.Do(graphql.Params{
		Schema:         e.schema,
		RequestString:  query,
		OperationName:  operationName,
		VariableValues: variables,
		Context:        ctx,
	})

	if result.HasErrors() {
		e.log.Warn("graphql request completed with errors",
			zap.String("request_id", requestID(ctx)),
			zap.Int("error_count", len(result.Errors)),
			zap.String("first_error", result.Errors[0].Message),
		)
	}

	return result
}

func requestID(ctx context.Context) string {
	if rc := RequestContextFrom(ctx); rc != nil {
		return rc.RequestID
	}
	return ""
}
