package routes

import (
	"sellerhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations        = "/quotation"
	PathServiceQuotations = "/service-quotation"
	PathInvoices          = "/invoice"
	PathServiceInvoices   = "/service-invoice"
	PathOrders            = "/order"
)

func addDealRoutes(
	rg *gin.RouterGroup,
	productQuotations *handlers.QuotationHandler,
	productInvoices *handlers.InvoiceHandler,
	serviceQuotations *handlers.QuotationHandler,
	serviceInvoices *handlers.InvoiceHandler,
	orders *handlers.OrderHandler,
) {
	addQuotationRoutes(rg.Group(PathQuotations), productQuotations)
	addQuotationRoutes(rg.Group(PathServiceQuotations), serviceQuotations)
	addInvoiceRoutes(rg.Group(PathInvoices), productInvoices)
	addInvoiceRoutes(rg.Group(PathServiceInvoices), serviceInvoices)

	ordersGroup := rg.Group(PathOrders, handlers.SellerAuth())
	{
		ordersGroup.GET("/:id", orders.Get)
		ordersGroup.PUT("/:id/status", orders.UpdateStatus)
	}
}

func addQuotationRoutes(rg *gin.RouterGroup, h *handlers.QuotationHandler) {
	rg.Use(handlers.SellerAuth())
	{
		rg.PUT("/:id/accepted", h.Accept)
		rg.PUT("/:id/rejected", h.Reject)
		rg.PUT("/:id/negotiate", h.Negotiate)
	}
}

func addInvoiceRoutes(rg *gin.RouterGroup, h *handlers.InvoiceHandler) {
	// The buyer view is token-gated, not session-gated. The collection
	// root is the canonical path; /view stays as the alias embedded in
	// previously issued invoice links.
	rg.POST("", h.View)
	rg.POST("/view", h.View)

	sellers := rg.Group("", handlers.SellerAuth())
	{
		sellers.POST("/generate", h.Generate)
		sellers.PUT("/:id", h.Update)
		sellers.DELETE("/:id", h.Delete)
	}
}
