package main

import (
	"github.com/0shamedia/metamorphosis-doctor/cmd"
)

func main() {
	cmd.Execute()
}
