package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffzip"
)

const progName = "huffzip"
const usageMessageRaw = `
Usage: huffzip [-d|--debug] [-q|--quiet] SUBCOMMAND...

Subcommands:
  compress IN OUT
	Huffman-code the file IN and write the compressed file OUT.

  decompress IN OUT
	Decode the compressed file IN and write the original bytes to OUT.

  table [-json] IN
	Print the code table stored in the compressed file IN.
`

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 64
)

var log = logging.MustGetLogger("huffzip/cmd")

var leveledLogBackend logging.LeveledBackend

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

type usageError struct {
	detail string
}

func (e *usageError) Error() string {
	return e.detail
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) error {
	return &usageError{fmt.Sprintf(detailFmt, detailArgs...)}
}

func startLogging(w io.Writer) {
	backend := logging.NewLogBackend(w, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-12s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	startLogging(stderr)

	ourFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	var debugLogging, quiet bool
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")
	ourFlags.BoolVar(&quiet, "quiet", false, "")
	ourFlags.BoolVar(&quiet, "q", false, "")

	argErr := ourFlags.Parse(args)
	if argErr == flag.ErrHelp {
		io.WriteString(stdout, usageMessage())
		return exitOK
	} else if argErr != nil {
		return reportUsage(stderr, argErr.Error())
	}

	switch {
	case debugLogging:
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	case quiet:
		leveledLogBackend.SetLevel(logging.WARNING, "")
	}

	rest := ourFlags.Args()
	if len(rest) == 0 {
		return reportUsage(stderr, "missing SUBCOMMAND")
	}

	var err error
	switch rest[0] {
	case "compress":
		err = compressCommand(rest[1:])
	case "decompress":
		err = decompressCommand(rest[1:])
	case "table":
		err = tableCommand(rest[1:], stdout)
	default:
		err = usageErrorf("bad subcommand \"%s\"", rest[0])
	}

	var ue *usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ue):
		return reportUsage(stderr, ue.detail)
	default:
		fmt.Fprintf(stderr, "%s: %s\n", progName, err.Error())
		return exitError
	}
}

func reportUsage(stderr io.Writer, detail string) int {
	fmt.Fprintf(stderr, "%s: %s\n%s", progName, detail, usageMessage())
	return exitUsage
}

func inOutArgs(args []string) (string, string, error) {
	if len(args) != 2 {
		return "", "", usageErrorf("expected IN OUT, got %d arguments", len(args))
	}
	return args[0], args[1], nil
}

func compressCommand(args []string) error {
	inPath, outPath, err := inOutArgs(args)
	if err != nil {
		return err
	}
	stats, err := huffzip.CompressFile(inPath, outPath)
	if err != nil {
		return err
	}
	log.Infof("%s: %d bytes -> %s: %d bytes", inPath, stats.InputBytes, outPath, stats.OutputBytes)
	return nil
}

func decompressCommand(args []string) error {
	inPath, outPath, err := inOutArgs(args)
	if err != nil {
		return err
	}
	stats, err := huffzip.DecompressFile(inPath, outPath)
	if err != nil {
		return err
	}
	log.Infof("%s: %d bytes -> %s: %d bytes", inPath, stats.InputBytes, outPath, stats.OutputBytes)
	return nil
}

func tableCommand(args []string, stdout io.Writer) error {
	tableFlags := flag.NewFlagSet(progName+" table", flag.ContinueOnError)
	tableFlags.Usage = func() {}
	tableFlags.SetOutput(&nullWriter{})
	var asJSON bool
	tableFlags.BoolVar(&asJSON, "json", false, "")
	if err := tableFlags.Parse(args); err != nil {
		return usageErrorf("%s", err.Error())
	}
	if tableFlags.NArg() != 1 {
		return usageErrorf("expected IN, got %d arguments", tableFlags.NArg())
	}

	p, err := huffzip.ReadPayloadFile(tableFlags.Arg(0))
	if err != nil {
		return err
	}

	if asJSON {
		raw, err := json.Marshal(p.Codes)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(stdout, "%s\n", raw)
		return err
	}
	if _, err := p.Codes.Dump(stdout); err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "BitLength = %d\n", p.BitLength)
	return err
}
