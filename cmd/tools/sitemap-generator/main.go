// cmd/tools/sitemap-generator/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"dukapos-web/internal/common/logger"
	"dukapos-web/internal/registry"
	"dukapos-web/internal/server"
)

func main() {
	baseURL := flag.String("base-url", "https://dukapos.co.ke", "Site base URL for absolute sitemap entries")
	overrideDir := flag.String("overrides", "", "Registry override directory (optional)")
	out := flag.String("out", "", "Output file; stdout when empty")
	flag.Parse()

	log := logger.NewStructured("warn", "console")
	regs := registry.LoadWithOverrides(*overrideDir, log)

	data, err := server.BuildSitemap(regs, *baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: build sitemap: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d URLs to %s\n", countURLs(regs), *out)
}

func countURLs(regs *registry.Registries) int {
	locs := len(regs.Locations.All())
	inds := len(regs.Industries.All())
	intents := len(regs.Intents.All())
	// hub + flats + city hubs + city intents (minus default) + industries + city industries
	return 1 + 3 + locs + locs*(intents-1) + inds + locs*inds
}
