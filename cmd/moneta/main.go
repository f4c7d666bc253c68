// Command moneta performs exact money arithmetic from the command line.
package main

import (
	"os"

	"github.com/govalues/moneta/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
