// Command candic is the Candi toolchain CLI: lexing, preprocessing,
// parsing, and constant evaluation of Candi source.
package main

import "github.com/ayzg/candi/cmd"

func main() {
	cmd.Execute()
}
