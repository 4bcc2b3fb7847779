package main

import "github.com/atyhamos/tp/internal/cli"

func main() {
	cli.Execute()
}
