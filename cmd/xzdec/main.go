// Command xzdec decompresses an XZ stream from a file or stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/coredecomp/xzcore/xz"
)

var (
	inputFile  = flag.String("i", "", "input file path (reads stdin if omitted)")
	outputFile = flag.String("o", "", "output file path (writes stdout if omitted)")
	chunkSize  = flag.Int("chunk", 1<<16, "read chunk size in bytes")
	version    = flag.Bool("version", false, "print version and exit")
)

const appVersion = "0.1.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-i input.xz] [-o output]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Decompresses an XZ stream, reading stdin and writing stdout by default.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Printf("xzdec version %s\n", appVersion)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	in := os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			return fmt.Errorf("opening output: %w", err)
		}
		defer f.Close()
		out = f
	}

	dec := xz.NewStreamingDecoder()
	buf := make([]byte, *chunkSize)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			dec.Push(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	if err := dec.Finish(); err != nil {
		return fmt.Errorf("decoding stream: %w", err)
	}

	for {
		chunk, more := dec.Pull(*chunkSize)
		if len(chunk) > 0 {
			if _, err := out.Write(chunk); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
		if !more {
			break
		}
	}
	return nil
}
