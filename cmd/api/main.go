package main

import (
	_ "webquote/docs"
	"webquote/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Offer Configurator API
// @version         1.0
// @description     Business-proposal configurator: packages, add-on options, live pricing and reloadable drafts.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
