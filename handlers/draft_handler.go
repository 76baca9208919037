// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"scratchcard-server/store"
	"scratchcard-server/validation"
	"scratchcard-server/wizard"
)

const maxDraftKeyLength = 128

type draftAction int

const (
	draftGet draftAction = iota
	draftSave
	draftReset
	draftNext
	draftPrev
	draftSubmit
)

// draftFlow serves the draft endpoints of one wizard flow.
type draftFlow interface {
	handle(c echo.Context, key string, action draftAction) error
}

// wizardFlow binds a wizard flow to its form type and to what happens on submit.
type wizardFlow[T any] struct {
	h         *Handler
	flow      wizard.Flow
	normalize func(T) T
	// redact blanks fields that must not be stored with the draft.
	redact func(T) T
	// submit stores the completed form and returns its reference.
	submit func(ctx context.Context, logger echo.Logger, values T) (string, error)
}

func (h *Handler) draftFlows() map[string]draftFlow {
	return map[string]draftFlow{
		wizard.OrderFlow.Name: &wizardFlow[validation.OrderRequest]{
			h:         h,
			flow:      wizard.OrderFlow,
			normalize: trimOrder,
			submit: func(ctx context.Context, logger echo.Logger, req validation.OrderRequest) (string, error) {
				order, err := h.placeOrder(ctx, logger, req)
				if err != nil {
					return "", err
				}
				return order.Reference, nil
			},
		},
		wizard.RedemptionFlow.Name: &wizardFlow[validation.RedemptionRequest]{
			h:         h,
			flow:      wizard.RedemptionFlow,
			normalize: normalizeRedemption,
			redact:    redactRedemption,
			submit: func(ctx context.Context, logger echo.Logger, req validation.RedemptionRequest) (string, error) {
				redemption, err := h.submitRedemption(ctx, logger, req)
				if err != nil {
					return "", err
				}
				return redemption.Reference, nil
			},
		},
	}
}

// GetDraftHandler godoc
// @Summary      Load a wizard draft
// @Description  Returns the saved state of a form. Unknown keys, and drafts saved by an incompatible version, start over at step 1.
// @Tags         drafts
// @Produce      json
// @Param        flow  path  string  true  "Flow name (order or redemption)"
// @Param        key   path  string  true  "Client chosen draft key"
// @Success      200 {object} DraftResponse  "Draft state"
// @Failure      404 {object} echo.HTTPError "Unknown flow"
// @Failure      500 {object} echo.HTTPError "Internal server error"
// @Router       /v1/drafts/{flow}/{key} [get]
func (h *Handler) GetDraftHandler(c echo.Context) error { return h.draft(c, draftGet) }

// SaveDraftHandler godoc
// @Summary      Save wizard values
// @Description  Stores the form values without validating them or moving between steps.
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        flow          path  string        true  "Flow name (order or redemption)"
// @Param        key           path  string        true  "Client chosen draft key"
// @Param        draftRequest  body  DraftRequest  true  "Form values"
// @Success      200 {object} DraftResponse  "Draft state"
// @Failure      400 {object} echo.HTTPError "Bad request, malformed payload"
// @Failure      409 {object} echo.HTTPError "Form already submitted"
// @Failure      500 {object} echo.HTTPError "Internal server error"
// @Router       /v1/drafts/{flow}/{key} [put]
func (h *Handler) SaveDraftHandler(c echo.Context) error { return h.draft(c, draftSave) }

// ResetDraftHandler godoc
// @Summary      Reset a wizard
// @Description  Forgets the draft so the form starts again at step 1.
// @Tags         drafts
// @Produce      json
// @Param        flow  path  string  true  "Flow name (order or redemption)"
// @Param        key   path  string  true  "Client chosen draft key"
// @Success      200 {object} DraftResponse  "Fresh draft state"
// @Failure      500 {object} echo.HTTPError "Internal server error"
// @Router       /v1/drafts/{flow}/{key} [delete]
func (h *Handler) ResetDraftHandler(c echo.Context) error { return h.draft(c, draftReset) }

// NextDraftHandler godoc
// @Summary      Advance a wizard
// @Description  Saves the values and moves to the next step when the current step's fields are valid.
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        flow          path  string        true  "Flow name (order or redemption)"
// @Param        key           path  string        true  "Client chosen draft key"
// @Param        draftRequest  body  DraftRequest  true  "Form values"
// @Success      200 {object} DraftResponse           "Draft state"
// @Failure      409 {object} echo.HTTPError          "Already on the last step or submitted"
// @Failure      422 {object} ValidationErrorResponse "Fields of the current step are invalid"
// @Router       /v1/drafts/{flow}/{key}/next [post]
func (h *Handler) NextDraftHandler(c echo.Context) error { return h.draft(c, draftNext) }

// PrevDraftHandler godoc
// @Summary      Go back one step
// @Tags         drafts
// @Produce      json
// @Param        flow  path  string  true  "Flow name (order or redemption)"
// @Param        key   path  string  true  "Client chosen draft key"
// @Success      200 {object} DraftResponse  "Draft state"
// @Failure      409 {object} echo.HTTPError "Form already submitted"
// @Router       /v1/drafts/{flow}/{key}/prev [post]
func (h *Handler) PrevDraftHandler(c echo.Context) error { return h.draft(c, draftPrev) }

// SubmitDraftHandler godoc
// @Summary      Submit a wizard
// @Description  Validates the whole form from the last step, then places the order or redemption it describes.
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        flow          path  string        true  "Flow name (order or redemption)"
// @Param        key           path  string        true  "Client chosen draft key"
// @Param        draftRequest  body  DraftRequest  true  "Form values"
// @Success      201 {object} DraftResponse           "Submitted, reference set"
// @Failure      409 {object} echo.HTTPError          "Not on the last step, already submitted or card already redeemed"
// @Failure      422 {object} ValidationErrorResponse "The form is invalid"
// @Router       /v1/drafts/{flow}/{key}/submit [post]
func (h *Handler) SubmitDraftHandler(c echo.Context) error { return h.draft(c, draftSubmit) }

func (h *Handler) draft(c echo.Context, action draftAction) error {
	flow, ok := h.draftFlows()[c.Param("flow")]
	if !ok {
		return &echo.HTTPError{Code: http.StatusNotFound, Message: "Unknown wizard flow"}
	}

	key := c.Param("key")
	if key == "" || len(key) > maxDraftKeyLength {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "draft key must be between 1 and 128 characters",
		}
	}
	return flow.handle(c, key, action)
}

func (w *wizardFlow[T]) handle(c echo.Context, key string, action draftAction) error {
	ctx := c.Request().Context()
	logger := c.Logger()

	if action == draftReset {
		if err := w.h.Store.Drafts.Delete(ctx, w.flow.Name, key); err != nil {
			return respondError(c, err)
		}
		logger.Debugf("Reset %s draft %s", w.flow.Name, key)
		return w.respond(c, http.StatusOK, wizard.New[T](w.flow, w.h.Validator), false, "")
	}

	m, discarded, err := w.load(ctx, logger, key)
	if err != nil {
		return respondError(c, err)
	}

	switch action {
	case draftGet:
		return w.respond(c, http.StatusOK, m, discarded, "")

	case draftPrev:
		if err := m.Prev(); err != nil {
			return respondError(c, transitionError(err))
		}

	case draftSave, draftNext, draftSubmit:
		values, err := w.values(c)
		if err != nil {
			return err
		}

		if action == draftSave {
			if err := m.Update(values); err != nil {
				return respondError(c, transitionError(err))
			}
			break
		}

		var transErr error
		if action == draftNext {
			transErr = m.Next(values)
		} else {
			transErr = m.Submit(values)
		}
		if fe, ok := validation.AsFieldErrors(transErr); ok {
			if err := w.save(ctx, key, m); err != nil {
				return respondError(c, err)
			}
			return validationFailed(c, fe)
		}
		if transErr != nil {
			return respondError(c, transitionError(transErr))
		}

		if action == draftSubmit {
			reference, err := w.submit(ctx, logger, m.Values())
			if err != nil {
				return respondError(c, err)
			}
			if err := w.save(ctx, key, m); err != nil {
				return respondError(c, err)
			}
			logger.Infof("Submitted %s draft %s as %s", w.flow.Name, key, reference)
			return w.respond(c, http.StatusCreated, m, discarded, reference)
		}
	}

	if err := w.save(ctx, key, m); err != nil {
		return respondError(c, err)
	}
	return w.respond(c, http.StatusOK, m, discarded, "")
}

// load restores the stored draft for key. Drafts that cannot be restored are
// deleted and a fresh machine is returned with discarded set.
func (w *wizardFlow[T]) load(ctx context.Context, logger echo.Logger, key string) (*wizard.Machine[T], bool, error) {
	m := wizard.New[T](w.flow, w.h.Validator)

	d, err := w.h.Store.Drafts.Load(ctx, w.flow.Name, key)
	if errors.Is(err, store.ErrNotFound) {
		return m, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if err := m.Restore(d); err != nil {
		logger.Warnf("Discarding %s draft %s: %v", w.flow.Name, key, err)
		if err := w.h.Store.Drafts.Delete(ctx, w.flow.Name, key); err != nil {
			return nil, false, err
		}
		return wizard.New[T](w.flow, w.h.Validator), true, nil
	}
	return m, false, nil
}

func (w *wizardFlow[T]) save(ctx context.Context, key string, m *wizard.Machine[T]) error {
	d, err := w.snapshot(m)
	if err != nil {
		return err
	}
	return w.h.Store.Drafts.Save(ctx, key, d)
}

// snapshot is m.Snapshot with the flow's redacted fields blanked.
func (w *wizardFlow[T]) snapshot(m *wizard.Machine[T]) (wizard.Draft, error) {
	d, err := m.Snapshot()
	if err != nil || w.redact == nil {
		return d, err
	}
	raw, err := json.Marshal(w.redact(m.Values()))
	if err != nil {
		return wizard.Draft{}, fmt.Errorf("encode %s draft values: %w", w.flow.Name, err)
	}
	d.Values = raw
	return d, nil
}

// redactRedemption drops the BVN and NIN so drafts never hold them. The client sends
// them again with the identity step and with submit.
func redactRedemption(req validation.RedemptionRequest) validation.RedemptionRequest {
	req.BVN = ""
	req.NIN = ""
	return req
}

func (w *wizardFlow[T]) values(c echo.Context) (T, error) {
	var zero T

	var req DraftRequest
	if err := c.Bind(&req); err != nil {
		c.Logger().Error("Invalid draft request payload:", err)
		return zero, errInvalidPayload
	}

	var values T
	if len(req.Values) > 0 && string(req.Values) != "null" {
		if err := json.Unmarshal(req.Values, &values); err != nil {
			c.Logger().Error("Invalid draft values:", err)
			return zero, &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: "values does not match the fields of the " + w.flow.Name + " form",
			}
		}
	}
	return w.normalize(values), nil
}

func (w *wizardFlow[T]) respond(c echo.Context, code int, m *wizard.Machine[T], discarded bool, reference string) error {
	d, err := w.snapshot(m)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(code, DraftResponse{
		Flow:      d.Flow,
		Version:   d.Version,
		Step:      d.Step,
		Steps:     m.Steps(),
		StepName:  m.StepName(),
		Submitted: d.Submitted,
		Values:    d.Values,
		Reference: reference,
		Discarded: discarded,
	})
}

func transitionError(err error) error {
	switch {
	case errors.Is(err, wizard.ErrSubmitted):
		return &echo.HTTPError{
			Code:    http.StatusConflict,
			Message: "This form has already been submitted, reset it to start again",
		}
	case errors.Is(err, wizard.ErrLastStep):
		return &echo.HTTPError{
			Code:    http.StatusConflict,
			Message: "Already on the last step, submit the form instead",
		}
	case errors.Is(err, wizard.ErrNotLastStep):
		return &echo.HTTPError{
			Code:    http.StatusConflict,
			Message: "The form can only be submitted from its last step",
		}
	}
	return err
}
