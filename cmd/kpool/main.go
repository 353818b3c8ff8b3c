package main

import "github.com/mcoot/kellypool/internal/cli"

func main() {
	cli.Execute()
}
