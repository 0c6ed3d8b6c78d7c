package main

import (
	"log"

	"github.com/taskodos/taskodos/internal/cli/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
