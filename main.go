package main

import (
	"flag"
	"log"

	"raycaster/internal/config"
	"raycaster/internal/game"
)

func main() {
	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	// Load configuration
	cfg, err := flags.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := game.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
