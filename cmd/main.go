// cmd/main.go
package main

import (
	"go-ledger-api/app"

	_ "go-ledger-api/docs"
)

// @title           Go-Ledger API
// @version         1.0
// @description     Account ledger and fund transfer API built with Go.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	app.Run()
}
