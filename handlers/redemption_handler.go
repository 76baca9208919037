// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"scratchcard-server/crypto"
	"scratchcard-server/models"
	"scratchcard-server/network"
	"scratchcard-server/rabbitmq"
	"scratchcard-server/store"
	"scratchcard-server/validation"
)

const redemptionReferencePrefix = "RDM"

var errCardAlreadyRedeemed = &echo.HTTPError{
	Code:    http.StatusConflict,
	Message: "A redemption for this card has already been submitted",
}

// CreateRedemptionHandler godoc
// @Summary      Redeem a card
// @Description  Validates a redemption request, stores it with hashed BVN and NIN, then publishes redemption.submitted.
// @Tags         redemptions
// @Accept       json
// @Produce      json
// @Param        redemptionRequest  body  validation.RedemptionRequest  true  "Redemption payload"
// @Success      201 {object} RedemptionResponse      "Redemption submitted"
// @Failure      400 {object} echo.HTTPError          "Bad request, malformed payload"
// @Failure      409 {object} echo.HTTPError          "Card already has a pending or paid redemption"
// @Failure      422 {object} ValidationErrorResponse "One or more fields are invalid"
// @Failure      500 {object} echo.HTTPError          "Internal server error"
// @Router       /v1/redemptions [post]
func (h *Handler) CreateRedemptionHandler(c echo.Context) error {
	var req validation.RedemptionRequest
	if err := c.Bind(&req); err != nil {
		c.Logger().Error("Invalid redemption request payload:", err)
		return errInvalidPayload
	}

	redemption, err := h.submitRedemption(c.Request().Context(), c.Logger(), req)
	if err != nil {
		return respondError(c, err)
	}

	res := redemptionResponse(redemption)
	res.Message = "Redemption submitted successfully"
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) submitRedemption(ctx context.Context, logger echo.Logger, req validation.RedemptionRequest) (*models.Redemption, error) {
	req = normalizeRedemption(req)
	if err := h.Validator.Validate(&req); err != nil {
		return nil, err
	}

	exists, err := h.Store.Redemptions.ExistsForSerial(ctx, req.SerialNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.Warnf("Duplicate redemption attempt for card %s", req.SerialNumber)
		return nil, errCardAlreadyRedeemed
	}

	bvnHash, err := h.Crypto.Hash(req.BVN)
	if err != nil {
		return nil, fmt.Errorf("hash bvn: %w", err)
	}
	ninHash, err := h.Crypto.Hash(req.NIN)
	if err != nil {
		return nil, fmt.Errorf("hash nin: %w", err)
	}

	reference, err := crypto.GenerateReference(redemptionReferencePrefix)
	if err != nil {
		return nil, err
	}

	phone := network.FormatPhone(req.Phone)
	redemption := &models.Redemption{
		Reference:     reference,
		SerialNumber:  req.SerialNumber,
		FullName:      req.FullName,
		Phone:         phone,
		Operator:      h.Detector.Detect(phone).Operator.String(),
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		BVNHash:       bvnHash,
		NINHash:       ninHash,
		Status:        models.RedemptionPending,
	}
	if err := h.Store.Redemptions.Create(ctx, redemption); err != nil {
		if errors.Is(err, store.ErrDuplicateSerial) {
			logger.Warnf("Concurrent redemption for card %s refused", req.SerialNumber)
			return nil, errCardAlreadyRedeemed
		}
		return nil, err
	}
	logger.Infof("Redemption %s submitted for card %s", redemption.Reference, redemption.SerialNumber)

	h.publishEvent(ctx, logger, models.RedemptionEvent, rabbitmq.RedemptionSubmitted, redemption.Reference,
		redemption.Phone, redemption.Operator,
		rabbitmq.RedemptionSubmittedData{
			SerialNumber: redemption.SerialNumber,
			FullName:     redemption.FullName,
			Phone:        redemption.Phone,
			Operator:     redemption.Operator,
			BankName:     redemption.BankName,
		})

	return redemption, nil
}

// ListRedemptionsHandler godoc
// @Summary      List redemptions
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page       query  int     false  "Page number (default 1)"
// @Param        page_size  query  int     false  "Page size (default 20, max 100)"
// @Param        status     query  string  false  "Filter by status"
// @Success      200 {object} RedemptionListResponse "Redemptions, newest first"
// @Failure      401 {object} echo.HTTPError         "Unauthorized"
// @Failure      500 {object} echo.HTTPError         "Internal server error"
// @Router       /v1/admin/redemptions [get]
func (h *Handler) ListRedemptionsHandler(c echo.Context) error {
	opts := listOptions(c)
	redemptions, total, err := h.Store.Redemptions.List(c.Request().Context(), opts)
	if err != nil {
		return respondError(c, err)
	}

	data := make([]RedemptionResponse, 0, len(redemptions))
	for i := range redemptions {
		data = append(data, redemptionResponse(&redemptions[i]))
	}
	return c.JSON(http.StatusOK, RedemptionListResponse{
		Data:       data,
		Pagination: paginate(opts, total),
		Message:    "Redemptions retrieved successfully",
	})
}

func redemptionResponse(r *models.Redemption) RedemptionResponse {
	return RedemptionResponse{
		Reference:     r.Reference,
		SerialNumber:  r.SerialNumber,
		FullName:      r.FullName,
		Phone:         r.Phone,
		Operator:      r.Operator,
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		AccountName:   r.AccountName,
		Status:        string(r.Status),
		CreatedAt:     formatTime(r.CreatedAt),
	}
}

// normalizeRedemption upper-cases card tokens and trims free text. Nothing is
// truncated or stripped, so malformed tokens and identity numbers still fail.
func normalizeRedemption(req validation.RedemptionRequest) validation.RedemptionRequest {
	req.SerialNumber = strings.ToUpper(strings.TrimSpace(req.SerialNumber))
	req.CardCode = strings.ToUpper(strings.TrimSpace(req.CardCode))
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.BankName = strings.TrimSpace(req.BankName)
	req.AccountName = strings.TrimSpace(req.AccountName)
	return req
}
