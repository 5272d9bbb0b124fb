// Package main is the entry point for the ochat terminal client.
package main

import (
	"ochat/cli/cmd"
)

func main() {
	cmd.Execute()
}
