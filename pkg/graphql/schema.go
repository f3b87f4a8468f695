// Package graphql exposes a graphql-go schema over HTTP.
package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/storefront/pkg/bind"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

// NewSchema creates a read-only schema from a root query.
func NewSchema(query *graphql.Object) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: query,
	})
}

// Request is a GraphQL-over-HTTP request.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler serves schema on GET (?query=&operationName=&variables=) and
// POST (JSON body). Execution errors are reported in the result with a 200,
// as GraphQL clients expect.
func Handler(schema graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Request
		switch r.Method {
		case http.MethodGet:
			q := r.URL.Query()
			req.Query = q.Get("query")
			req.OperationName = q.Get("operationName")
			if v := q.Get("variables"); v != "" {
				if err := json.Unmarshal([]byte(v), &req.Variables); err != nil {
					response.BadRequest(w, "variables must be a JSON object")
					return
				}
			}
		case http.MethodPost:
			if err := bind.JSON(w, r, &req); err != nil {
				response.BadRequest(w, err.Error())
				return
			}
		default:
			w.Header().Set("Allow", "GET, POST")
			response.Error(w, http.StatusMethodNotAllowed, "Method Not Allowed")
			return
		}

		if req.Query == "" {
			response.BadRequest(w, "query is required")
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        r.Context(),
		})
		response.OK(w, result)
	}
}
