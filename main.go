package main

import (
	"os"

	"github.com/barangay-is/barangay-is/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
