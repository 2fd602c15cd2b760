// cmd/ssp/main.go
package main

import (
	"ssp/internal/app"
	"ssp/internal/appshell"
)

func main() {
	appshell.Main(app.RunContextIO)
}
