package main

import (
	"os"

	"github.com/ftlang/ftl/emitftl"
)

// runFmt parses and checks path, then writes its canonical FTL
// rendering to stdout (spec.md §6's `fmt FILE`).
func runFmt(path string) error {
	nodes, err := frontend(path)
	if err != nil {
		return err
	}
	return emitftl.New(os.Stdout).Emit(nodes)
}
