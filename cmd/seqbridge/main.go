package main

import (
	"os"

	"github.com/AnomalyFi/seq-wasm/cmd/seqbridge/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
