package main

import (
	_ "sellerhub/docs"
	"sellerhub/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Seller Hub Deals API
// @version         1.0
// @description     Seller-facing deal lifecycle (quotations, invoices, orders) backed by DynamoDB and Redis.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey SellerID
// @in header
// @name X-Seller-ID
// @description Authenticated seller identity injected by the session gateway.

func main() {
	routes.Run()
}
