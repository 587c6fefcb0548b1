package main

import (
	"os"

	"github.com/msto63/clite/cmd/clite/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
