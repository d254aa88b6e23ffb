package main

import (
	"fmt"
	"io"

	"github.com/hupe1980/polycrc/codec"
	"github.com/hupe1980/polycrc/internal/input"
)

// report is the outcome for one input. Text output mirrors the classic
// crc32 tool; JSON output writes one object per line.
type report struct {
	Input      string  `json:"input"`
	Source     string  `json:"source"`
	Version    int     `json:"version"`
	Engine     string  `json:"engine"`
	Polynomial string  `json:"polynomial"`
	Bytes      int     `json:"bytes"`
	Result     string  `json:"result"`
	Verified   bool    `json:"verified,omitempty"`
	Iterations int     `json:"iterations,omitempty"`
	AvgMsec    float64 `json:"avg_msec,omitempty"`

	// message is echoed for string inputs.
	message string
}

type printer struct {
	w      io.Writer
	json   bool
	codec  codec.Codec
	titled bool
}

func newPrinter(w io.Writer, cfg *config) *printer {
	return &printer{
		w:      w,
		json:   cfg.format == "json",
		codec:  cfg.codec,
		titled: len(cfg.inputs) > 1,
	}
}

func (p *printer) print(r *report) error {
	if p.json {
		return p.codec.WriteLine(p.w, r)
	}

	if p.titled {
		fmt.Fprintf(p.w, "Input: %s\n", r.Input)
	}
	if r.Iterations > 0 {
		fmt.Fprintf(p.w, "Running %d iterations of version %d for benchmarking.\n", r.Iterations, r.Version)
		fmt.Fprintf(p.w, "Polynomial used: %s\n", r.Polynomial)
		fmt.Fprintf(p.w, "Result: %s\n", r.Result)
		p.printVerified(r)
		_, err := fmt.Fprintf(p.w, "Benchmark result for %d iterations: %f msec\n", r.Iterations, r.AvgMsec)
		return err
	}

	fmt.Fprintf(p.w, "Running version %d\n", r.Version)
	fmt.Fprintf(p.w, "Polynomial used: %s\n", r.Polynomial)
	if r.Source == string(input.SourceLiteral) {
		fmt.Fprintf(p.w, "Message to be sent: %s\n", r.message)
	}
	_, err := fmt.Fprintf(p.w, "Result: %s\n", r.Result)
	p.printVerified(r)
	return err
}

func (p *printer) printVerified(r *report) {
	if r.Verified {
		fmt.Fprintln(p.w, "Verified: all versions agree")
	}
}
