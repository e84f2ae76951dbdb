package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/playhub-library/internal/client/cli"
	"github.com/dmitrijs2005/playhub-library/internal/client/client"
	"github.com/dmitrijs2005/playhub-library/internal/client/config"
	"github.com/dmitrijs2005/playhub-library/internal/flagx"
)

func run(ctx context.Context) error {
	cfg := config.LoadConfig()

	c, err := client.NewLibraryClient(cfg.ServerEndpointAddr, cfg.RequestTimeout)
	if err != nil {
		return err
	}
	defer c.Close()

	app := cli.NewApp(c, os.Stdout)
	return app.Run(ctx, flagx.StripArgs(os.Args[1:], config.Flags))
}

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
