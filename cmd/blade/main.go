// Command blade exposes the blade sequence utilities on the command line.
package main

import (
	"os"

	"github.com/hasbyte1/go-blade/cmd/blade/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
