package derive

import "hash/crc32"

// EthernetCRC computes CRC-32 (IEEE 802.3 polynomial 0xEDB88320,
// little-endian byte order, initial value 0xFFFFFFFF, final XOR
// 0xFFFFFFFF) over data. The table crc32.IEEE already encodes this
// exact polynomial and reflection, so this is a thin, well-named wrapper
// rather than a hand-rolled table.
func EthernetCRC(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}
