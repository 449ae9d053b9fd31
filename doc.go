// Package huffzip implements whole-file Huffman compression over the byte
// alphabet.  Compression counts byte frequencies, builds an optimal prefix
// tree, assigns a bit-string code to each byte that occurs, and packs the
// concatenated codes into bytes.  Decompression unpacks the bits and matches
// code prefixes against the stored code table.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffzip
