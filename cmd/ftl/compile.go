package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/ftlang/ftl/emitc"
)

// runCompile parses and checks path, emits the equivalent C source to
// "path.c", and invokes `cc path.c -o path` (spec.md §6's `compile
// FILE`). The cc invocation runs under a context.Context, since invoking
// an external compiler is a genuine blocking external process
// (SPEC_FULL.md §5); runRun's execBinary does the same for the produced
// binary.
func runCompile(path string) error {
	cPath, err := emitC(path)
	if err != nil {
		return err
	}
	return invokeCC(context.Background(), cPath, path)
}

// emitC runs the frontend over path and writes its C translation to
// "path.c", returning that path.
func emitC(path string) (string, error) {
	nodes, err := frontend(path)
	if err != nil {
		return "", err
	}

	cPath := path + ".c"
	f, err := os.Create(cPath)
	if err != nil {
		return "", fmt.Errorf("ftl: could not create %s: %w", cPath, err)
	}
	defer f.Close()

	if err := emitc.New(f).Emit(nodes); err != nil {
		return "", fmt.Errorf("ftl: could not emit %s: %w", cPath, err)
	}
	return cPath, nil
}

// invokeCC runs `cc cPath -o outPath`, inheriting stdout/stderr so the
// compiler's own diagnostics reach the user directly.
func invokeCC(ctx context.Context, cPath, outPath string) error {
	cmd := exec.CommandContext(ctx, "cc", cPath, "-o", outPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	greenColor.Fprintf(os.Stderr, "cc %s -o %s\n", cPath, outPath)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ftl: cc failed: %w", err)
	}
	return nil
}
