package main

import (
	"fmt"
	"os"

	"lexdfa/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lexdfa:", err)
		os.Exit(1)
	}
}
