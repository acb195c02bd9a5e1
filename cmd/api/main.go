package main

import (
	_ "lovedktech/docs"
	"lovedktech/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           LoveDK Tech API
// @version         1.0
// @description     Marketing site backend: service catalog, checkout with hosted payments, order tracking and the admin price console.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  followyaya@gmail.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
