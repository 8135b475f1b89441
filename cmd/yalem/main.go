// Command yalem renders yalem demo trees headlessly.
package main

import (
	"fmt"
	"os"

	"github.com/yalem-ui/yalem/cmd/yalem/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
