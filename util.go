package huffzip

// packedLen returns the number of bytes needed to hold n bits.
func packedLen(n uint64) uint64 {
	if n%8 != 0 {
		return n/8 + 1
	}
	return n / 8
}

// paddingLen returns the number of zero bits needed to pad n bits out to a
// whole byte.
func paddingLen(n uint64) uint {
	return uint((8 - n%8) % 8)
}
