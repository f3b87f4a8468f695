// Package testkit provides JSON-scenario-driven HTTP tests and throwaway
// databases for package tests.
//
// A scenario file describes one request and what should come back:
//
//	{
//	  "name": "checkout rejects short address",
//	  "requestMethod": "POST",
//	  "requestUrl": "/api/checkout",
//	  "request": {"shipping_address": "abc", "cart_total": 10},
//	  "expectedCode": 400,
//	  "response": {"detail": "Shipping address is required (min 5 chars)"}
//	}
//
// Scenario files live in testdata/ next to the *_test.go that runs them:
//
//	func TestAPI(t *testing.T) {
//	    testkit.RunDir(t, handler, "testdata")
//	}
package testkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Scenario describes a single HTTP test case loaded from a JSON file.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	RequestMethod string            `json:"requestMethod"` // defaults to GET
	RequestURL    string            `json:"requestUrl"`
	Request       json.RawMessage   `json:"request"`    // inline JSON body
	RawRequest    string            `json:"rawRequest"` // body sent verbatim, for malformed input
	Headers       map[string]string `json:"headers"`

	ExpectedCode int             `json:"expectedCode"`
	Response     json.RawMessage `json:"response"`         // expected JSON body, optional
	ResponseFile string          `json:"responseFileName"` // same, read from a file next to the scenario

	// IgnoreFields are object keys dropped from both sides before the body
	// comparison, at any depth. Use it for generated ids and timestamps.
	IgnoreFields []string `json:"ignoreFields"`

	dir string
}

// LoadScenario reads and validates a scenario from a JSON file.
func LoadScenario(path string) (*Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("testkit: invalid scenario %q: %w", abs, err)
	}

	s.dir = filepath.Dir(abs)
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.RequestURL == "" {
		return fmt.Errorf("requestUrl is required")
	}
	if s.ExpectedCode == 0 {
		return fmt.Errorf("expectedCode is required")
	}
	if len(s.Request) > 0 && s.RawRequest != "" {
		return fmt.Errorf("request and rawRequest are mutually exclusive")
	}
	if s.RequestMethod == "" {
		s.RequestMethod = "GET"
	}
	return nil
}

// Body returns the bytes to send, or nil for a bodiless request.
func (s *Scenario) Body() []byte {
	if s.RawRequest != "" {
		return []byte(s.RawRequest)
	}
	if len(s.Request) > 0 {
		return s.Request
	}
	return nil
}

// ExpectedBody returns the expected response JSON, inline or from
// responseFileName. nil means the body is not checked.
func (s *Scenario) ExpectedBody() ([]byte, error) {
	if len(s.Response) > 0 {
		return s.Response, nil
	}
	if s.ResponseFile == "" {
		return nil, nil
	}
	p := s.ResponseFile
	if !filepath.IsAbs(p) {
		p = filepath.Join(s.dir, p)
	}
	return os.ReadFile(p)
}

// LoadAllFromDir loads every *.json file in dir as a Scenario, in file name
// order. Files that fail to load are collected as errors.
func LoadAllFromDir(dir string) ([]*Scenario, []error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		return nil, []error{fmt.Errorf("testkit: no scenario files found in %q", dir)}
	}
	sort.Strings(entries)

	var (
		scenarios []*Scenario
		errs      []error
	)
	for _, path := range entries {
		s, err := LoadScenario(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, errs
}
