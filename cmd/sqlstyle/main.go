// Command sqlstyle checks SQL files against a configurable style guide.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlstyle/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
