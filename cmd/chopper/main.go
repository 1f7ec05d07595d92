// cmd/chopper/main.go
package main

import (
	"github.com/dolittle007/ont-chopper/internal/app"
	"github.com/dolittle007/ont-chopper/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
