package main

import (
	"fmt"
	"os"

	_ "voicecal/docs" // Swagger docs
)

// @title       Voice Calendar API
// @description Reference voice-calendar webhook and Chinese date phrase parser.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
