// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scratchcard-server/network"
)

// DetectPhoneHandler godoc
// @Summary      Detect the network of a phone number
// @Description  Validates a Nigerian mobile number and reports its operator. Invalid numbers are not an error; the result says why they were rejected.
// @Tags         phone
// @Accept       json
// @Produce      json
// @Param        phoneRequest  body  PhoneRequest  true  "Phone number"
// @Success      200 {object} DetectPhoneResponse "Detection result"
// @Failure      400 {object} echo.HTTPError      "Bad request, malformed payload"
// @Router       /v1/phone/detect [post]
func (h *Handler) DetectPhoneHandler(c echo.Context) error {
	logger := c.Logger()

	var req PhoneRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid detect phone request payload:", err)
		return errInvalidPayload
	}

	res := DetectPhoneResponse{DetectionResult: h.Detector.Detect(req.Phone)}
	if res.IsValid {
		intl, err := h.Detector.International(res.PhoneNumber)
		if err != nil {
			logger.Warnf("Failed to convert %s to E.164: %v", res.PhoneNumber, err)
		} else {
			res.International = intl
		}
	}

	return c.JSON(http.StatusOK, res)
}

// FormatPhoneHandler godoc
// @Summary      Format a phone number
// @Description  Reduces input to at most 11 digits and returns it with the hyphenated display form.
// @Tags         phone
// @Accept       json
// @Produce      json
// @Param        phoneRequest  body  PhoneRequest  true  "Phone number"
// @Success      200 {object} FormatPhoneResponse "Formatted number"
// @Failure      400 {object} echo.HTTPError      "Bad request, malformed payload"
// @Router       /v1/phone/format [post]
func (h *Handler) FormatPhoneHandler(c echo.Context) error {
	var req PhoneRequest
	if err := c.Bind(&req); err != nil {
		c.Logger().Error("Invalid format phone request payload:", err)
		return errInvalidPayload
	}

	return c.JSON(http.StatusOK, FormatPhoneResponse{
		Formatted: network.FormatPhone(req.Phone),
		Display:   network.DisplayPhone(req.Phone),
	})
}
