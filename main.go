package main

import (
	"os"

	"github.com/rethab/coreutils/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
