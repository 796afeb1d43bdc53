package main

import (
	"github.com/baletools/bale/cmd/bale/cmd"
)

func main() {
	cmd.Execute()
}
