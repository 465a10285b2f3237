package main

import (
	"github.com/pixelforge/gamevault/internal/cli"
)

func main() {
	cli.Execute()
}
