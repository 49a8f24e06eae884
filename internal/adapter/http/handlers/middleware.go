package handlers

import (
	"net/http"
	"strings"

	"sellerhub/pkg"

	"github.com/gin-gonic/gin"
)

// sellerIDKey is the context key the auth middleware stores the seller
// under.
const sellerIDKey = "seller_id"

var errMissingSeller = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing seller identity", http.StatusUnauthorized)

// SellerAuth extracts the authenticated seller from the X-Seller-ID header
// set by the upstream session gateway. Requests without it are rejected
// before any handler runs.
func SellerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sellerID := strings.TrimSpace(c.GetHeader("X-Seller-ID"))
		if sellerID == "" {
			c.AbortWithStatusJSON(errMissingSeller.HTTPStatus, errMissingSeller.ToHTTPError())
			return
		}
		c.Set(sellerIDKey, sellerID)
		c.Next()
	}
}

func sellerID(c *gin.Context) string {
	return c.GetString(sellerIDKey)
}
