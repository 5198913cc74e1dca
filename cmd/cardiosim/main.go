package main

import "github.com/emiliopalmerini/cardiosim/internal/cli"

func main() {
	cli.Execute()
}
