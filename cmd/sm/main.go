package main

import (
	"os"

	"github.com/bnema/studymate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
