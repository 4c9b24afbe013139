package main

import (
	_ "duka_payments/docs"
	"duka_payments/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Duka Payments API
// @version         1.0
// @description     Payment-initiation gateway bridging storefront order webhooks to M-Pesa STK push.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
