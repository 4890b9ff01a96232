// Package main is the entry point for the pinzi CLI.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pierophp/pinyin-extension/cmd/pinzi/cmd"
)

func main() {
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
