package main

import (
	"os"

	"github.com/bnema/trastodon/cmd"
)

func main() {
	os.Exit(cmd.ExitCode(cmd.Execute()))
}
