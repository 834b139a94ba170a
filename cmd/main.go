// cmd/main.go
package main

import (
	"demo-bank-api/app"
	"log"

	"github.com/joho/godotenv"
)

// @title           Demo Bank API
// @version         1.0
// @description     A demo banking API: demo login, profiles, transfers and transaction history.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /
func main() {
	// A missing .env is fine; the environment may already be populated.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}
	app.Run()
}
