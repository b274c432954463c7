// Package main is the entry point for the tplvet CLI.
package main

import "tplvet.dev/pkg/tplvet/cmd"

func main() {
	cmd.Execute()
}
