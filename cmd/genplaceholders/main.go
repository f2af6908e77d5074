package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/quiztasy/internal/assets"
	"chosenoffset.com/quiztasy/internal/config"
)

func main() {
	out := flag.String("out", "", "asset root to write into (default: configured asset root)")
	overwrite := flag.Bool("overwrite", false, "replace existing files")
	flag.Parse()

	cfg := config.FromEnvironment()
	root := *out
	if root == "" {
		root = cfg.Assets.Root
	}

	fmt.Println("Final Quiztasy Placeholder Graphics Generator")
	fmt.Println("=============================================")
	fmt.Println()

	written, err := assets.GeneratePlaceholders(root, cfg, *overwrite)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, path := range written {
		fmt.Printf("  wrote %s\n", path)
	}

	fmt.Println()
	fmt.Printf("Done! %d placeholder file(s) under %s.\n", len(written), root)
	fmt.Println("Replace them with real art whenever it is ready.")
}
