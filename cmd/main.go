package main

import (
	"os"

	"github.com/threewisemonkeys-as/minigrep/internal/di"
)

func main() {
	os.Exit(di.Execute(os.Args, os.Stdout, os.Stderr))
}
