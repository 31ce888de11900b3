package main

import (
	"log"

	"github.com/unofficialbereal/bereal-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("bereal: %v", err)
	}
}
