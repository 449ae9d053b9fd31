package huffzip

// NumSymbols is the size of the alphabet: every value of a byte.
const NumSymbols = 256

// FrequencyTable holds the number of occurrences of each byte value.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies tallies the occurrences of each byte value in data.
func CountFrequencies(data []byte) FrequencyTable {
	var ft FrequencyTable
	for _, b := range data {
		ft[b]++
	}
	return ft
}

// Total returns the sum of all counts, i.e. the length of the input.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range ft {
		sum += count
	}
	return sum
}

// Distinct returns the number of byte values with a non-zero count.
func (ft *FrequencyTable) Distinct() int {
	var n int
	for _, count := range ft {
		if count != 0 {
			n++
		}
	}
	return n
}
