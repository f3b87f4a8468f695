// Package controllers holds the HTTP handlers. Each handler performs one
// service call and maps its error to a status code.
package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/ctx"
)

// fail writes err as a {"detail"} response. Validation errors become 400,
// missing rows 404, anything else 500 with faultPrefix before the message.
func fail(c *ctx.Context, err error, faultPrefix string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.BadRequest(verr.Message)
	case errors.Is(err, services.ErrNotFound):
		c.NotFound(err.Error())
	default:
		c.Log().Error("request failed", "path", c.Path(), "error", err)
		c.Error(http.StatusInternalServerError, faultPrefix+err.Error())
	}
}
