package main

import "github.com/rpalakkal/ecourts-check/internal/cli"

func main() {
	cli.Execute()
}
