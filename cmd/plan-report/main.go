// Package main is the entry point for the plan-report command.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/strategic-planning/backend/config"
	"github.com/strategic-planning/backend/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Weight shares and the default implementor come from the same environment as the API
	_ = godotenv.Load()
	cfg := config.Load()

	app := &cli.App{
		Rules: cfg.Planning.Rules(),
	}

	return cli.NewRootCmd(app).Execute()
}
