package testkit

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode checks the response code with testify.
func AssertStatusCode(t *testing.T, scenario *Scenario, got int) {
	t.Helper()
	assert.Equal(t, scenario.ExpectedCode, got,
		"[%s] HTTP status code mismatch", scenario.Name)
}

// AssertJSONBody compares actual against expected after decoding both, so
// key order and whitespace never matter. Keys listed in IgnoreFields are
// removed from both sides first. An empty expected body skips the check.
func AssertJSONBody(t *testing.T, scenario *Scenario, expected, actual []byte) {
	t.Helper()
	if len(expected) == 0 {
		return
	}

	var expVal, actVal interface{}

	require.NoError(t,
		json.Unmarshal(expected, &expVal),
		"[%s] expected response is not valid JSON", scenario.Name,
	)

	if !assert.NoError(t,
		json.Unmarshal(actual, &actVal),
		"[%s] actual response is not valid JSON\nbody: %s", scenario.Name, string(actual),
	) {
		return
	}

	expVal = dropFields(expVal, scenario.IgnoreFields)
	actVal = dropFields(actVal, scenario.IgnoreFields)

	assert.Equal(t, expVal, actVal,
		"[%s] response body mismatch\n%s", scenario.Name,
		strings.Join(DiffJSON("", expVal, actVal), "\n"))
}

func dropFields(v interface{}, fields []string) interface{} {
	if len(fields) == 0 {
		return v
	}
	switch val := v.(type) {
	case map[string]interface{}:
		for _, f := range fields {
			delete(val, f)
		}
		for k, child := range val {
			val[k] = dropFields(child, fields)
		}
	case []interface{}:
		for i, child := range val {
			val[i] = dropFields(child, fields)
		}
	}
	return v
}

// DiffJSON returns human-readable difference lines between two decoded JSON
// values.
func DiffJSON(path string, expected, actual interface{}) []string {
	var diffs []string
	switch exp := expected.(type) {
	case map[string]interface{}:
		act, ok := actual.(map[string]interface{})
		if !ok {
			return append(diffs, fmt.Sprintf("  %s: expected object, got %T", keyPath(path), actual))
		}
		for k, ev := range exp {
			p := keyPath(path) + "." + k
			av, exists := act[k]
			if !exists {
				diffs = append(diffs, fmt.Sprintf("  %s: missing in actual", p))
				continue
			}
			diffs = append(diffs, DiffJSON(p, ev, av)...)
		}
		for k := range act {
			if _, exists := exp[k]; !exists {
				diffs = append(diffs, fmt.Sprintf("  %s.%s: unexpected in actual", keyPath(path), k))
			}
		}
	case []interface{}:
		act, ok := actual.([]interface{})
		if !ok {
			return append(diffs, fmt.Sprintf("  %s: expected array, got %T", keyPath(path), actual))
		}
		if len(exp) != len(act) {
			diffs = append(diffs, fmt.Sprintf("  %s: array length expected=%d actual=%d", keyPath(path), len(exp), len(act)))
		}
		for i := 0; i < len(exp) && i < len(act); i++ {
			diffs = append(diffs, DiffJSON(fmt.Sprintf("%s[%d]", keyPath(path), i), exp[i], act[i])...)
		}
	default:
		if fmt.Sprintf("%v", expected) != fmt.Sprintf("%v", actual) {
			diffs = append(diffs, fmt.Sprintf("  %s:\n    - %v\n    + %v", keyPath(path), expected, actual))
		}
	}
	return diffs
}

func keyPath(path string) string {
	if path == "" {
		return "root"
	}
	return strings.TrimPrefix(path, ".")
}
