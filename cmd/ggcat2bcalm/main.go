// cmd/ggcat2bcalm/main.go
package main

import (
	"ggcat2bcalm/internal/app"
	"ggcat2bcalm/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
