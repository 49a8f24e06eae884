package handlers

import (
	"net/http"

	response "sellerhub/internal/adapter/http/dto/response"
	"sellerhub/internal/domain/entities"
	"sellerhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuotationHandler handles the seller's quotation decisions. One instance
// exists per item kind; both share the same use case logic over different
// tables.
type QuotationHandler struct {
	usecase usecase.IQuotationSagaUseCase
}

func NewQuotationHandler(uc usecase.IQuotationSagaUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// Accept godoc
// @Summary      Accept a quotation
// @Description  Accepts the quotation. At the quoted maximum price the deal finalizes immediately with an order; during negotiation it records the acceptance.
// @Tags         quotations
// @Produce      json
// @Param        X-Seller-ID  header  string  true  "Authenticated seller"
// @Param        id           path    string  true  "Quotation ID"
// @Success      200  {object}  response.QuotationActionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotation/{id}/accepted [put]
func (h *QuotationHandler) Accept(c *gin.Context) {
	res, err := h.usecase.Accept(c.Request.Context(), sellerID(c), c.Param("id"))
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	message := "Quotation accepted"
	if res.Transition == entities.TransitionDirectAccept {
		message = "Quotation accepted and order created"
	}
	c.JSON(http.StatusOK, response.FromAcceptResult(res, message))
}

// Reject godoc
// @Summary      Reject a quotation
// @Tags         quotations
// @Produce      json
// @Param        X-Seller-ID  header  string  true  "Authenticated seller"
// @Param        id           path    string  true  "Quotation ID"
// @Success      200  {object}  response.QuotationActionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotation/{id}/rejected [put]
func (h *QuotationHandler) Reject(c *gin.Context) {
	if err := h.usecase.Reject(c.Request.Context(), sellerID(c), c.Param("id")); err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.QuotationActionResponse{Message: "Quotation rejected"})
}

// Negotiate godoc
// @Summary      Open negotiation on a quotation
// @Description  Moves the quotation into negotiation and opens (or reuses) its deal thread.
// @Tags         quotations
// @Produce      json
// @Param        X-Seller-ID  header  string  true  "Authenticated seller"
// @Param        id           path    string  true  "Quotation ID"
// @Success      200  {object}  response.QuotationActionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotation/{id}/negotiate [put]
func (h *QuotationHandler) Negotiate(c *gin.Context) {
	threadID, err := h.usecase.Negotiate(c.Request.Context(), sellerID(c), c.Param("id"))
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.QuotationActionResponse{Message: "Negotiation opened", ChatID: threadID})
}
