// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"scratchcard-server/commons"
	"scratchcard-server/crypto"
	"scratchcard-server/middlewares"
	"scratchcard-server/network"
	"scratchcard-server/rabbitmq"
	"scratchcard-server/store"
	"scratchcard-server/validation"
)

// Handler carries the dependencies shared by every endpoint.
type Handler struct {
	Store     *store.Store
	Detector  *network.Detector
	Validator *validation.Validator
	Publisher rabbitmq.Publisher
	Crypto    *crypto.Crypto
	Auth      middlewares.AuthConfig
	// AdminPasswordHash is the argon2id hash the dashboard password is checked against.
	AdminPasswordHash string
}

func New(s *store.Store, detector *network.Detector, publisher rabbitmq.Publisher) *Handler {
	if publisher == nil {
		publisher = rabbitmq.NoopPublisher{}
	}
	return &Handler{
		Store:     s,
		Detector:  detector,
		Validator: validation.New(detector),
		Publisher: publisher,
		Crypto:    crypto.NewCrypto(),
		Auth:      middlewares.AuthConfigFromEnv(),

		AdminPasswordHash: commons.GetEnv("ADMIN_PASSWORD_HASH"),
	}
}

var errInvalidPayload = &echo.HTTPError{
	Code:    http.StatusBadRequest,
	Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
}

// validationFailed renders FieldErrors as a 422 response.
func validationFailed(c echo.Context, errs validation.FieldErrors) error {
	message := "Some fields are invalid, please correct them and try again"
	if msg, ok := errs["items"]; ok && len(errs) == 1 {
		message = msg
	}
	return c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Message: message,
		Errors:  errs,
	})
}

// respondError turns err into a response: FieldErrors become 422, HTTP errors pass
// through and anything else is logged and reported as a 500.
func respondError(c echo.Context, err error) error {
	if fe, ok := validation.AsFieldErrors(err); ok {
		return validationFailed(c, fe)
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	c.Logger().Error(err)
	return echo.ErrInternalServerError
}

func paginate(opts store.ListOptions, total int64) PaginationDetails {
	opts = opts.Normalize()
	return PaginationDetails{
		Page:         opts.Page,
		PageSize:     opts.PageSize,
		TotalRecords: total,
		TotalPages:   int((total + int64(opts.PageSize) - 1) / int64(opts.PageSize)),
	}
}

func listOptions(c echo.Context) store.ListOptions {
	opts := store.ListOptions{Status: c.QueryParam("status")}
	if p := c.QueryParam("page"); p != "" {
		if _, err := fmt.Sscanf(p, "%d", &opts.Page); err != nil {
			opts.Page = 1
		}
	}
	if ps := c.QueryParam("page_size"); ps != "" {
		if _, err := fmt.Sscanf(ps, "%d", &opts.PageSize); err != nil {
			opts.PageSize = 0
		}
	}
	return opts.Normalize()
}
