package graphql_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	gql "github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/pkg/graphql"
)

func echoSchema(t *testing.T) gql.Schema {
	t.Helper()
	schema, err := graphql.NewSchema(gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"echo": &gql.Field{
				Type: gql.String,
				Args: gql.FieldConfigArgument{"msg": &gql.ArgumentConfig{Type: gql.String}},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return p.Args["msg"], nil
				},
			},
		},
	}))
	require.NoError(t, err)
	return schema
}

func TestHandlerPost(t *testing.T) {
	h := graphql.Handler(echoSchema(t))

	body := `{"query":"query($m: String){ echo(msg: $m) }","variables":{"m":"hi"}}`
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"echo":"hi"}}`, rec.Body.String())
}

func TestHandlerGet(t *testing.T) {
	h := graphql.Handler(echoSchema(t))

	q := url.Values{"query": {`{ echo(msg: "yo") }`}}
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/graphql?"+q.Encode(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"echo":"yo"}}`, rec.Body.String())
}

func TestHandlerRejectsBadRequests(t *testing.T) {
	h := graphql.Handler(echoSchema(t))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/graphql", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"query is required"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodDelete, "/graphql", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
