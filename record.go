package lazylog

import "encoding/binary"

// Record header layout, 24 bytes, little-endian throughout:
//
//	bytes  0..4   total record length, header included
//	bytes  4..8   flags (bit 0 marks a skip marker)
//	bytes  8..16  call-site id
//	bytes 16..24  timestamp in monotonic clock units
//
// The argument payload follows immediately with no padding; pad bytes after
// the payload round the record up so the next one starts 8-byte aligned
// (alignRecordSize). Field access does not rely on that alignment: it all
// goes through byte-slice reads and writes.
const (
	recordHeaderSize = 24

	// skipMarkerSize is the readable prefix of a skip marker: length and
	// flags. A marker's remaining bytes are undefined, so a tail as short
	// as recordAlign bytes can still carry one.
	skipMarkerSize = 8

	flagSkipMarker = 1 << 0
)

func putRecordHeader(dst []byte, length uint32, callsite uint64, timestamp uint64) {
	binary.LittleEndian.PutUint32(dst[0:4], length)
	binary.LittleEndian.PutUint32(dst[4:8], 0)
	binary.LittleEndian.PutUint64(dst[8:16], callsite)
	binary.LittleEndian.PutUint64(dst[16:24], timestamp)
}

func putSkipMarker(dst []byte, length uint32) {
	binary.LittleEndian.PutUint32(dst[0:4], length)
	binary.LittleEndian.PutUint32(dst[4:8], flagSkipMarker)
}

func recordLength(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b[0:4])
}

func recordFlags(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b[4:8])
}

func recordCallsite(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b[8:16])
}

func recordTimestamp(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b[16:24])
}

func isSkipMarker(b []byte) bool {
	return recordFlags(b)&flagSkipMarker != 0
}

// alignRecordSize rounds a record size up so the next record starts 8-byte
// aligned. The padded length is what the header's length field carries; the
// pad bytes after the payload are never decoded.
func alignRecordSize(n int) int {
	return (n + recordAlign - 1) &^ (recordAlign - 1)
}
