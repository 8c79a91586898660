package main

import "github.com/openvitals/vitals-mcp/internal/cli"

func main() {
	cli.Execute()
}
