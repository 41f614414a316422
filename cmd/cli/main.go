package main

import (
	"context"
	"log"
	"os"

	"qrstudio/internal/buildinfo"
	"qrstudio/internal/client/cli"
	"qrstudio/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
