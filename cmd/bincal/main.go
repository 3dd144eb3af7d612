package main

import "github.com/jdtait/bincal/internal/cli"

func main() {
	cli.Execute()
}
