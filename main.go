package main

import (
	"os"

	"github.com/thenoetrevino/taskboard/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
