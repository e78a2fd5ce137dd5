package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	gqlengine "employee-service/internal/adapter/graphql"
	"employee-service/pkg/logger"
)

// Executor runs a GraphQL request. Satisfied by *graphql.Engine.
type Executor interface {
	Execute(ctx context.Context, query, operationName string, variables map[string]interface{}) *graphql.Result
}

// GraphQLHandler exposes the GraphQL engine over HTTP
type GraphQLHandler struct {
	engine Executor
	log    *zap.Logger
}

// NewGraphQLHandler creates a new GraphQLHandler instance
func NewGraphQLHandler(engine Executor, log *zap.Logger) *GraphQLHandler {
	return &GraphQLHandler{
		engine: engine,
		log:    log,
	}
}

// graphQLRequest is the standard POST body of a GraphQL request
type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Serve handles POST /graphql
func (h *GraphQLHandler) Serve(c *gin.Context) {
	var req graphQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid GraphQL request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_body",
			Message: "request body must be a JSON object with a query field",
		})
		return
	}

	result := h.engine.Execute(h.requestContext(c), req.Query, req.OperationName, req.Variables)
	c.JSON(http.StatusOK, result)
}

// Playground handles GET /graphql. A query parameter is executed directly;
// without one the GraphiQL page is served.
func (h *GraphQLHandler) Playground(c *gin.Context) {
	if query := c.Query("query"); query != "" {
		result := h.engine.Execute(h.requestContext(c), query, "", nil)
		c.JSON(http.StatusOK, result)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(graphiqlHTML))
}

// requestContext attaches the typed per-request data the resolvers read:
// the raw Authorization header and the correlation id.
func (h *GraphQLHandler) requestContext(c *gin.Context) context.Context {
	rc := &gqlengine.RequestContext{
		AuthHeader: c.GetHeader("Authorization"),
		RequestID:  logger.GetRequestID(c.Request.Context()),
	}
	return gqlengine.WithRequestContext(c.Request.Context(), rc)
}

const graphiqlHTML = `
<!DOCTYPE html>
<html>
  <head>
    <title>Employee Service GraphiQL</title>
    <link href="https://unpkg.com/graphiql/graphiql.min.css" rel="stylesheet" />
  </head>
  <body style="margin: 0;">
    <div id="graphiql" style="height: 100vh;"></div>
    <script
      crossorigin
      src="https://unpkg.com/react/umd/react.production.min.js"
    ></script>
    <script
      crossorigin
      src="https://unpkg.com/react-dom/umd/react-dom.production.min.js"
    ></script>
    <script
      crossorigin
      src="https://unpkg.com/graphiql/graphiql.min.js"
    ></script>
    <script>
      const fetcher = GraphiQL.createFetcher({
        url: '/graphql',
      });
      ReactDOM.render(
        React.createElement(GraphiQL, { fetcher: fetcher }),
        document.getElementById('graphiql'),
      );
    </script>
  </body>
</html>
`
