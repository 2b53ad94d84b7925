package main

import "github.com/kamal-hamza/folio/cmd"

func main() {
	cmd.Execute()
}
