package main

import "scholar/internal/cli"

func main() {
	cli.Execute()
}
