package main

import (
	"os"

	"github.com/abstractlab/yayi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
