package request

// UpdateOrderStatusRequest advances an order along the delivery pipeline.
type UpdateOrderStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	TrackingNumber string `json:"tracking_number"`
}
