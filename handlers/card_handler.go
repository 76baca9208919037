// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scratchcard-server/cards"
)

// FormatCardHandler godoc
// @Summary      Format card tokens
// @Description  Upper-cases and hyphenates a serial number and scratch code the way they are printed.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        cardRequest  body  CardRequest  true  "Card tokens"
// @Success      200 {object} FormatCardResponse "Formatted tokens"
// @Failure      400 {object} echo.HTTPError     "Bad request, malformed payload"
// @Router       /v1/cards/format [post]
func (h *Handler) FormatCardHandler(c echo.Context) error {
	var req CardRequest
	if err := c.Bind(&req); err != nil {
		c.Logger().Error("Invalid format card request payload:", err)
		return errInvalidPayload
	}

	return c.JSON(http.StatusOK, FormatCardResponse{
		SerialNumber: cards.FormatSerialNumber(req.SerialNumber),
		CardCode:     cards.FormatCardCode(req.CardCode),
	})
}

// ValidateCardHandler godoc
// @Summary      Validate card tokens
// @Description  Checks a serial number and scratch code against their printed formats. Nothing is looked up.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        cardRequest  body  CardRequest  true  "Card tokens"
// @Success      200 {object} ValidateCardResponse "Validity of each token"
// @Failure      400 {object} echo.HTTPError       "Bad request, malformed payload"
// @Router       /v1/cards/validate [post]
func (h *Handler) ValidateCardHandler(c echo.Context) error {
	var req CardRequest
	if err := c.Bind(&req); err != nil {
		c.Logger().Error("Invalid validate card request payload:", err)
		return errInvalidPayload
	}

	return c.JSON(http.StatusOK, ValidateCardResponse{
		SerialNumberValid: cards.ValidateSerialNumber(req.SerialNumber),
		CardCodeValid:     cards.ValidateCardCode(req.CardCode),
	})
}
