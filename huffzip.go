package huffzip

// Payload is everything a compressed file stores: the code table, the number
// of payload bits, and the packed bits themselves.
type Payload struct {
	Codes     CodeTable
	BitLength uint64
	Packed    []byte
}

// Compress Huffman-codes data.  It returns ErrEmptyInput if data is empty;
// the caller decides how to represent an empty file.
func Compress(data []byte) (Payload, error) {
	var e Encoder
	if err := e.Init(CountFrequencies(data)); err != nil {
		return Payload{}, err
	}

	packed, bitLength, err := e.EncodeBytes(data)
	if err != nil {
		return Payload{}, err
	}

	return Payload{
		Codes:     e.CodeTable(),
		BitLength: bitLength,
		Packed:    packed,
	}, nil
}

// Decompress recovers the original bytes from a Payload.  A Payload with an
// empty code table and no payload bits decompresses to an empty slice.
func Decompress(p Payload) ([]byte, error) {
	var d Decoder
	if err := d.Init(p.Codes); err != nil {
		return nil, err
	}
	return d.Decode(p.Packed, p.BitLength)
}
