package main

import (
	"flag"
	"fmt"
	"os"

	"bidindex/pkg/config"
	"bidindex/pkg/console"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (default: configs/bids.yaml or bids.yaml if present)")
	dataPath := flag.String("data", "", "Override the data source path from the config")
	format := flag.String("format", "", "Override the data source format (csv|sqlite)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[CLI] Failed to load config: %v", err)
	}
	if *dataPath != "" {
		cfg.Data.Path = *dataPath
	}
	if *format != "" {
		cfg.Data.Format = *format
	}
	log.Infof("[CLI] Data source: %s (%s)", cfg.Data.Path, cfg.Data.Format)

	fmt.Println("Bid Index CLI. Type 'help' for commands.")
	session, err := console.NewSession(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("[CLI] %v", err)
	}
	if err := session.Run(); err != nil {
		log.Errorf("[CLI] input error: %v", err)
		os.Exit(1)
	}
}
