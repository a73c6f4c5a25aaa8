// Rtfex is a CLI for recovering HTML and plain text encapsulated in
// RTF mail bodies, including compressed RTF and TNEF containers.
package main

import (
	"fmt"
	"os"

	"github.com/avaropoint/rtfex/internal/cmd/root"
)

func main() {
	cmd := root.NewCmdRoot()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
