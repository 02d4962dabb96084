// Package main provides the tinker CLI.
package main

import "github.com/mesh-intelligence/tinker/internal/cli"

func main() {
	cli.Execute()
}
