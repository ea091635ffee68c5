package reg

// DecodeSample reassembles a conversion result from the 3 response
// bytes, most-significant first. The top 8 bits of the result are
// always zero.
func DecodeSample(msb, csb, lsb byte) uint32 {
	return uint32(msb)<<16 | uint32(csb)<<8 | uint32(lsb)
}
