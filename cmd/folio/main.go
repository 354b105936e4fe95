package main

import "github.com/mx-space/folio/internal/cli"

func main() {
	cli.Execute()
}
