package huffzip

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffzip")

// Stats describes one CompressFile or DecompressFile run.
type Stats struct {
	InputBytes  int64
	OutputBytes int64
	PayloadBits uint64
	Symbols     int
}

// CompressFile compresses the file at inPath into a new file at outPath.
//
// It fails with ErrSourceNotFound, before writing anything, if inPath does
// not exist.  An empty input is stored as an empty code table with zero
// payload bits.  The output appears at outPath only if every step succeeds.
func CompressFile(inPath, outPath string) (Stats, error) {
	data, err := readSource(inPath)
	if err != nil {
		return Stats{}, err
	}

	p, err := Compress(data)
	if errors.Is(err, ErrEmptyInput) {
		log.Infof("%s is empty; writing an empty code table", inPath)
		p = Payload{}
	} else if err != nil {
		return Stats{}, fmt.Errorf("compress %s: %w", inPath, err)
	}

	n, err := writeAtomic(outPath, func(w io.Writer) error {
		return WritePayload(w, p)
	})
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		InputBytes:  int64(len(data)),
		OutputBytes: n,
		PayloadBits: p.BitLength,
		Symbols:     p.Codes.Len(),
	}
	log.Debugf("compressed %s: %d bytes -> %d bytes (%d symbols, %d payload bits)",
		inPath, stats.InputBytes, stats.OutputBytes, stats.Symbols, stats.PayloadBits)
	return stats, nil
}

// DecompressFile decompresses the file at inPath into a new file at outPath.
//
// It fails with ErrSourceNotFound if inPath does not exist, with
// ErrInvalidHeader if the header cannot be parsed, and with
// ErrMalformedStream if the stored code table cannot account for every
// payload bit.  In every failure case nothing is left at outPath.
func DecompressFile(inPath, outPath string) (Stats, error) {
	data, err := readSource(inPath)
	if err != nil {
		return Stats{}, err
	}

	p, err := ReadPayload(bytes.NewReader(data))
	if err != nil {
		return Stats{}, fmt.Errorf("read %s: %w", inPath, err)
	}

	out, err := Decompress(p)
	if err != nil {
		return Stats{}, fmt.Errorf("decompress %s: %w", inPath, err)
	}

	n, err := writeAtomic(outPath, func(w io.Writer) error {
		_, err := w.Write(out)
		return err
	})
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		InputBytes:  int64(len(data)),
		OutputBytes: n,
		PayloadBits: p.BitLength,
		Symbols:     p.Codes.Len(),
	}
	log.Debugf("decompressed %s: %d bytes -> %d bytes (%d symbols, %d payload bits)",
		inPath, stats.InputBytes, stats.OutputBytes, stats.Symbols, stats.PayloadBits)
	return stats, nil
}

// ReadPayloadFile reads the Payload stored in a compressed file without
// decoding it.
func ReadPayloadFile(path string) (Payload, error) {
	data, err := readSource(path)
	if err != nil {
		return Payload{}, err
	}
	p, err := ReadPayload(bytes.NewReader(data))
	if err != nil {
		return Payload{}, fmt.Errorf("read %s: %w", path, err)
	}
	return p, nil
}

func readSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	return data, err
}

// writeAtomic writes to a temporary file next to path and renames it into
// place once write and every flush have succeeded.
func writeAtomic(path string, write func(io.Writer) error) (n int64, err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return 0, err
	}
	tmpName := f.Name()
	closed := false
	defer func() {
		if err != nil {
			if !closed {
				_ = f.Close()
			}
			_ = os.Remove(tmpName)
		}
	}()

	bw := bufio.NewWriter(f)
	cw := &countingWriter{w: bw}
	if err = write(cw); err != nil {
		return 0, err
	}
	if err = bw.Flush(); err != nil {
		return 0, err
	}
	if err = f.Chmod(0o644); err != nil {
		return 0, err
	}
	closed = true
	if err = f.Close(); err != nil {
		return 0, err
	}
	if err = os.Rename(tmpName, path); err != nil {
		return 0, err
	}
	log.Debugf("wrote %d bytes to %s", cw.n, path)
	return cw.n, nil
}

// countingWriter is also an io.ByteWriter, so bitio writes through it
// without adding a buffer of its own.
type countingWriter struct {
	w *bufio.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

func (cw *countingWriter) WriteByte(b byte) error {
	if err := cw.w.WriteByte(b); err != nil {
		return err
	}
	cw.n++
	return nil
}

var _ io.ByteWriter = (*countingWriter)(nil)
