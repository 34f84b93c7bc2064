package main

import (
	"os"

	"uni_bot_go/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
