// Package checksum provides the integrity check used to verify round-trips.
package checksum

import "hash/crc32"

var table = crc32.MakeTable(crc32.IEEE)

// Checksum calculates a CRC32 (IEEE) checksum for the provided data.
func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, table)
}

// Verify validates whether data matches the expected checksum.
func Verify(data []byte, checksum uint32) bool {
	return crc32.Checksum(data, table) == checksum
}
