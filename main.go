// The main package for the lolscout executable.
package main

import (
	"lolscout/cmd"
)

// main defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
