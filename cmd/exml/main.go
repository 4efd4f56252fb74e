package main

import (
	"os"

	"github.com/KimNorgaard/go-exml/cmd/exml/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
