package huffzip

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Container layout, in order:
//
//	magic          4 bytes, "HZIP"
//	version        1 byte
//	entry count    9 bits, 0 .. 256
//	entries        per symbol, ascending: symbol (8 bits), code size
//	               (8 bits), code bits (first bit first)
//	(padding)      zero bits up to the next byte boundary
//	bit length     64 bits, big-endian
//	payload        packed bytes, to EOF
const (
	containerMagic   = "HZIP"
	containerVersion = 1

	entryCountBits = 9
)

// WritePayload writes a Payload in the container format.
func WritePayload(w io.Writer, p Payload) error {
	bw := bitio.NewWriter(w)

	if _, err := bw.Write([]byte(containerMagic)); err != nil {
		return err
	}
	if err := bw.WriteByte(containerVersion); err != nil {
		return err
	}

	symbols := p.Codes.Symbols()
	if err := bw.WriteBits(uint64(len(symbols)), entryCountBits); err != nil {
		return err
	}
	for _, symbol := range symbols {
		hc := p.Codes.codes[symbol]
		if err := bw.WriteBits(uint64(symbol), 8); err != nil {
			return err
		}
		if err := bw.WriteBits(uint64(hc.Size), 8); err != nil {
			return err
		}
		for i := 0; i < int(hc.Size); i++ {
			if err := bw.WriteBool(hc.Bit(i) != 0); err != nil {
				return err
			}
		}
	}
	if _, err := bw.Align(); err != nil {
		return err
	}

	if err := bw.WriteBits(p.BitLength, 64); err != nil {
		return err
	}
	if _, err := bw.Write(p.Packed); err != nil {
		return err
	}
	return bw.Close()
}

// ReadPayload reads a Payload written by WritePayload.  Header problems are
// reported as ErrInvalidHeader.  The code table and payload are not checked
// against each other here; Decompress does that.
func ReadPayload(r io.Reader) (Payload, error) {
	br := bitio.NewReader(r)

	magic := make([]byte, len(containerMagic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return Payload{}, headerError(err)
	}
	if string(magic) != containerMagic {
		return Payload{}, fmt.Errorf("%w: bad magic %q", ErrInvalidHeader, magic)
	}
	version, err := br.ReadByte()
	if err != nil {
		return Payload{}, headerError(err)
	}
	if version != containerVersion {
		return Payload{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidHeader, version)
	}

	count, err := br.ReadBits(entryCountBits)
	if err != nil {
		return Payload{}, headerError(err)
	}
	if count > NumSymbols {
		return Payload{}, fmt.Errorf("%w: %d code table entries, max %d", ErrInvalidHeader, count, NumSymbols)
	}

	var p Payload
	for i := uint64(0); i < count; i++ {
		hc, symbol, err := readEntry(br)
		if err != nil {
			return Payload{}, err
		}
		if _, dupe := p.Codes.Lookup(symbol); dupe {
			return Payload{}, fmt.Errorf("%w: duplicate code table entry for symbol %d", ErrInvalidHeader, symbol)
		}
		p.Codes.Set(symbol, hc)
	}
	br.Align()

	if p.BitLength, err = br.ReadBits(64); err != nil {
		return Payload{}, headerError(err)
	}
	if p.Packed, err = io.ReadAll(br); err != nil {
		return Payload{}, err
	}
	return p, nil
}

func readEntry(br *bitio.Reader) (Code, byte, error) {
	symbol, err := br.ReadBits(8)
	if err != nil {
		return Code{}, 0, headerError(err)
	}
	size, err := br.ReadBits(8)
	if err != nil {
		return Code{}, 0, headerError(err)
	}
	if size == 0 {
		return Code{}, 0, fmt.Errorf("%w: empty code for symbol %d", ErrInvalidHeader, symbol)
	}
	var hc Code
	for j := uint64(0); j < size; j++ {
		bit, err := br.ReadBool()
		if err != nil {
			return Code{}, 0, headerError(err)
		}
		if bit {
			hc = hc.Append(1)
		} else {
			hc = hc.Append(0)
		}
	}
	return hc, byte(symbol), nil
}

func headerError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated header", ErrInvalidHeader)
	}
	return err
}
