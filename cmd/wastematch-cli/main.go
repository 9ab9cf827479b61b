package main

import (
	"fmt"
	"os"

	"github.com/dalemusser/wastematch/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// .env may carry API_HOST / REACT_APP_API_HOST.
	_ = godotenv.Load()

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
