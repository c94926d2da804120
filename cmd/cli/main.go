package main

import (
	"context"
	"log"

	"github.com/ntndev/skinscan/internal/cli"
	"github.com/ntndev/skinscan/internal/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
