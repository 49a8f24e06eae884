package handlers

import (
	"net/http"

	request "sellerhub/internal/adapter/http/dto/request"
	response "sellerhub/internal/adapter/http/dto/response"
	"sellerhub/internal/usecase"
	"sellerhub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

// InvoiceHandler handles the invoice round of a deal. One instance exists
// per item kind.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// Generate godoc
// @Summary      Generate an invoice for a negotiated quotation
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        X-Seller-ID  header  string                          true  "Authenticated seller"
// @Param        payload      body    request.GenerateInvoiceRequest  true  "Invoice payload"
// @Success      201  {object}  response.GenerateInvoiceResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /invoice/generate [post]
func (h *InvoiceHandler) Generate(c *gin.Context) {
	var payload request.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Generate(c.Request.Context(), sellerID(c), payload.ToInput())
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromGenerateResult(res))
}

// Update godoc
// @Summary      Amend a pending invoice
// @Description  Merge-patches the pending invoice; absent fields keep their stored values. Totals are recomputed.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        X-Seller-ID  header  string                        true  "Authenticated seller"
// @Param        id           path    string                        true  "Invoice ID"
// @Param        payload      body    request.UpdateInvoiceRequest  true  "Fields to change"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /invoice/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	var payload request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.Update(c.Request.Context(), sellerID(c), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// Delete godoc
// @Summary      Withdraw a pending invoice
// @Description  Deletes the pending invoice and returns the deal to negotiation so a new one can be issued.
// @Tags         invoices
// @Produce      json
// @Param        X-Seller-ID  header  string  true  "Authenticated seller"
// @Param        id           path    string  true  "Invoice ID"
// @Success      204  "withdrawn"
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /invoice/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), sellerID(c), c.Param("id")); err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// View godoc
// @Summary      View an invoice by capability token
// @Description  Unauthenticated buyer view. The token alone grants access to exactly one invoice; the first view is recorded.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        payload  body  request.ViewInvoiceRequest  true  "Capability token"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      410  {object}  pkg.HTTPError
// @Router       /invoice [post]
func (h *InvoiceHandler) View(c *gin.Context) {
	var payload request.ViewInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.ViewByToken(c.Request.Context(), payload.InvoiceToken)
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv))
}
