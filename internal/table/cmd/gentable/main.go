// Package main generates Go source for a CRC32 lookup table literal.
//
// Usage:
//
//	go run ./cmd/gentable -poly 0x04C11DB7 -name IEEE -o ieee_table.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/hupe1980/polycrc/internal/table"
	"github.com/hupe1980/polycrc/poly"
)

var (
	polyFlag = flag.String("poly", "0x04C11DB7", "generator polynomial in normal (MSB-first) form")
	name     = flag.String("name", "IEEE", "name of the generated variable")
	pkg      = flag.String("pkg", "table", "package name of the generated file")
	output   = flag.String("o", "", "output file (default: stdout)")
	perLine  = flag.Int("per-line", 8, "entries per line")
)

func main() {
	flag.Parse()

	p, err := poly.Parse(*polyFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gentable: %v\n", err)
		os.Exit(1)
	}

	src, err := generate(p, *name, *pkg, *perLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gentable: %v\n", err)
		os.Exit(1)
	}

	if *output == "" {
		_, _ = os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "gentable: %v\n", err)
		os.Exit(1)
	}
}

func generate(p poly.Polynomial, name, pkg string, perLine int) ([]byte, error) {
	if perLine <= 0 {
		perLine = 8
	}
	r := p.Reflected()
	t := table.Build(r)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by gentable -poly %s -name %s; DO NOT EDIT.\n\n", p, name)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "// %s is the lookup table for the reflected polynomial %s (normal form %s).\n", name, r, p)
	fmt.Fprintf(&buf, "var %s = Table{\n", name)
	for i := 0; i < len(t); i += perLine {
		end := min(i+perLine, len(t))
		entries := make([]string, 0, end-i)
		for _, v := range t[i:end] {
			entries = append(entries, fmt.Sprintf("0x%08x", v))
		}
		fmt.Fprintf(&buf, "\t%s,\n", strings.Join(entries, ", "))
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}
