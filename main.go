package main

import (
	"github.com/slemfisk/midi-clean-v3/cmd"
)

func main() {
	cmd.Execute()
}
