package main

import (
	"fmt"
	"os"

	"github.com/graph-guard/mrxhash/pkg/cli"
)

func main() {
	w := os.Stdout
	switch c := cli.Parse(w, os.Args).(type) {
	case cli.CommandThroughput:
		runThroughput(w, c)
	case cli.CommandQuality:
		runQuality(w, c)
	default:
		if c != nil {
			panic(fmt.Errorf("unexpected command: %#v", c))
		}
	}
}
