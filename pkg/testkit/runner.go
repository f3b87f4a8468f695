package testkit

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// Run executes a single scenario file against handler as a subtest.
func Run(t *testing.T, handler http.Handler, scenarioPath string) {
	t.Helper()

	s, err := LoadScenario(scenarioPath)
	if err != nil {
		t.Fatalf("testkit: load scenario %q: %v", scenarioPath, err)
	}

	t.Run(s.Name, func(t *testing.T) {
		RunScenario(t, handler, s)
	})
}

// RunDir runs every *.json scenario in dir, in file name order, as
// subtests against the same handler. Scenarios share whatever state the
// handler holds, so later files may depend on earlier ones.
func RunDir(t *testing.T, handler http.Handler, dir string) {
	t.Helper()

	scenarios, errs := LoadAllFromDir(dir)
	for _, err := range errs {
		t.Errorf("%v", err)
	}

	for _, s := range scenarios {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			RunScenario(t, handler, s)
		})
	}
}

// RunScenario fires s at handler and asserts the status code and body.
func RunScenario(t *testing.T, handler http.Handler, s *Scenario) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if b := s.Body(); b != nil {
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(strings.ToUpper(s.RequestMethod), s.RequestURL, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range s.Headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	AssertStatusCode(t, s, rec.Code)

	expected, err := s.ExpectedBody()
	if err != nil {
		t.Errorf("[%s] read expected response: %v", s.Name, err)
		return rec
	}
	AssertJSONBody(t, s, expected, rec.Body.Bytes())
	return rec
}
