package main

import (
	"os"

	"github.com/mnightingale/simdb64/cmd/simdb64/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
