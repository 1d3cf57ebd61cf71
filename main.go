package main

import "github.com/tscharff/doi-mcp/cmd"

func main() {
	cmd.Execute()
}
