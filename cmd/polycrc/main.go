// Command polycrc computes CRC32 checksums of files, strings, standard input
// and S3/MinIO objects with a selectable engine and generator polynomial.
//
// Usage:
//
//	polycrc [options] input...
//
// Run polycrc -h for the full option list.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr})
	stop()
	os.Exit(code)
}
