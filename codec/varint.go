package codec

// var_int uses the 1/3/5/9-byte prefix convention: values below 0xfd
// encode as a single byte; 0xfd introduces a uint16; 0xfe a uint32; 0xff a
// uint64. This is the same compact-size convention used throughout
// UTXO-style wire formats.
const (
	varIntPrefix16 = 0xfd
	varIntPrefix32 = 0xfe
	varIntPrefix64 = 0xff
)

func varIntLen(n uint64) int {
	switch {
	case n < varIntPrefix16:
		return 1
	case n <= 0xffff:
		return 3
	case n <= 0xffffffff:
		return 5
	default:
		return 9
	}
}
