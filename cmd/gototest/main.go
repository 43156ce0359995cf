package main

import "gototest/internal/cli"

func main() {
	cli.Execute()
}
