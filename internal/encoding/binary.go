package encoding

// Merge32 two uint32 to uint64
func Merge32(a, b uint32) uint64 {
	return (uint64(a) << 32) + uint64(b)
}

// Split64 uint64 to two uint32
func Split64(in uint64) (uint32, uint32) {
	return uint32(in >> 32), uint32(in)
}
