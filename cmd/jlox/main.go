package main

import (
	"os"

	"jlox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
