package main

import "sfz/internal/cli"

func main() {
	cli.Execute()
}
