// @title           Freelance Applications API
// @version         1.0
// @description     Job application lifecycle of the freelance marketplace.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	_ "freelance_backend/docs"
	"freelance_backend/internal/app"
)

func main() {
	app.Run()
}
