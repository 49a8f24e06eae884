package handlers

import (
	"net/http"

	request "sellerhub/internal/adapter/http/dto/request"
	response "sellerhub/internal/adapter/http/dto/response"
	"sellerhub/internal/domain/entities"
	"sellerhub/internal/usecase"
	"sellerhub/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles the post-sale order pipeline. Orders of both item
// kinds share one table and one handler.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// UpdateStatus godoc
// @Summary      Advance an order along the delivery pipeline
// @Description  Moves the order exactly one step forward, or into cancelled/returned. Shipping and delivery timestamps are stamped automatically.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-Seller-ID  header  string                            true  "Authenticated seller"
// @Param        id           path    string                            true  "Order ID"
// @Param        payload      body    request.UpdateOrderStatusRequest  true  "New status"
// @Success      200  {object}  response.OrderResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /order/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.UpdateStatus(c.Request.Context(), sellerID(c), c.Param("id"), usecase.UpdateOrderStatusInput{
		Status:         entities.OrderStatus(payload.Status),
		TrackingNumber: payload.TrackingNumber,
	})
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

// Get godoc
// @Summary      Fetch one order
// @Tags         orders
// @Produce      json
// @Param        X-Seller-ID  header  string  true  "Authenticated seller"
// @Param        id           path    string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /order/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), sellerID(c), c.Param("id"))
	if err != nil {
		appErr := mapDealError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}
