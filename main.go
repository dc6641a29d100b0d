package main

import (
	"os"

	"github.com/abhisek/skillscroll/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
