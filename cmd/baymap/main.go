package main

import (
	"baymap/internal/cli"
)

func main() {
	cli.Execute()
}
