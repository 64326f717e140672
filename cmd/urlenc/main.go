// Command urlenc converts between JSON or YAML mappings and
// application/x-www-form-urlencoded query strings.
package main

import (
	"os"

	"github.com/tomasbasham/urlenc/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
