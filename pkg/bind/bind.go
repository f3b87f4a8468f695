// Package bind decodes an HTTP request body into a struct.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shashiranjanraj/storefront/config"
)

// ErrEmptyBody is returned when the request carries no body at all.
var ErrEmptyBody = errors.New("request body is empty")

// JSON decodes r.Body into dest. The body is capped at MAX_BODY_BYTES and
// must contain a single JSON value.
func JSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxBodyBytes())

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		case errors.Is(err, io.EOF):
			return ErrEmptyBody
		default:
			return fmt.Errorf("invalid JSON: %w", err)
		}
	}

	if dec.More() {
		return errors.New("invalid JSON: unexpected data after the request object")
	}
	return nil
}
