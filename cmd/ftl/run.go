package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// runRun compiles path exactly as runCompile does, then execs the
// produced binary with the current process's stdio (spec.md §6's `run
// FILE`).
func runRun(path string) error {
	cPath, err := emitC(path)
	if err != nil {
		return err
	}
	if err := invokeCC(context.Background(), cPath, path); err != nil {
		return err
	}
	return execBinary(context.Background(), path)
}

// execBinary runs the compiled binary at path, inheriting stdin,
// stdout, and stderr.
func execBinary(ctx context.Context, path string) error {
	binary := path
	if _, err := exec.LookPath(binary); err != nil {
		binary = "./" + path
	}

	cmd := exec.CommandContext(ctx, binary)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ftl: %s: %w", path, err)
	}
	return nil
}
