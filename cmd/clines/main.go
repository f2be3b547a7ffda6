// Command clines counts effective lines of code and writes a size report
// into the project README.
package main

import "github.com/prittamravi/clines/internal/cli"

func main() {
	cli.Execute()
}
