package lazylog

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Serializer is the contract a type implements to take the fast logging
// path. Encode copies the value's byte image into the queue on the hot path;
// a matching DecodeFn turns those bytes back into a display token on the
// flush path, where allocation is allowed.
//
// The round-trip law: for any value v and buffer b with len(b) >= v.Size(),
// decoding the bytes written by v.Encode(b) yields the value's canonical
// display form and consumes exactly v.Size() bytes.
type Serializer interface {
	// Size returns the exact number of bytes Encode will write. It must be
	// a pure function of the value's current state.
	Size() int
	// Encode writes exactly Size bytes at the start of dst and returns the
	// unused tail. It must not fail given a sufficient buffer.
	Encode(dst []byte) []byte
}

// DecodeFn consumes the bytes a matching Encode wrote and returns a display
// token plus the remaining bytes. Decoders run on the flush path and may
// allocate. A decoder that runs out of bytes panics: payload lengths are
// fixed by the call site that wrote them, so a shortfall means the queue is
// corrupt.
type DecodeFn func(src []byte) (string, []byte)

// lenPrefixSize is the framing overhead of variable-length payloads.
const lenPrefixSize = 4

func decodeSplit(src []byte, n int) ([]byte, []byte) {
	if len(src) < n {
		panic(fmt.Sprintf("lazylog: corrupt queue: need %d payload bytes, have %d", n, len(src)))
	}
	return src[:n], src[n:]
}

// EncodeUint8 writes v into dst and returns the unused tail.
func EncodeUint8(dst []byte, v uint8) []byte {
	dst[0] = v
	return dst[1:]
}

// EncodeUint16 writes v little-endian into dst and returns the unused tail.
func EncodeUint16(dst []byte, v uint16) []byte {
	binary.LittleEndian.PutUint16(dst, v)
	return dst[2:]
}

// EncodeUint32 writes v little-endian into dst and returns the unused tail.
func EncodeUint32(dst []byte, v uint32) []byte {
	binary.LittleEndian.PutUint32(dst, v)
	return dst[4:]
}

// EncodeUint64 writes v little-endian into dst and returns the unused tail.
func EncodeUint64(dst []byte, v uint64) []byte {
	binary.LittleEndian.PutUint64(dst, v)
	return dst[8:]
}

// EncodeInt8 writes v into dst and returns the unused tail.
func EncodeInt8(dst []byte, v int8) []byte { return EncodeUint8(dst, uint8(v)) }

// EncodeInt16 writes v little-endian into dst and returns the unused tail.
func EncodeInt16(dst []byte, v int16) []byte { return EncodeUint16(dst, uint16(v)) }

// EncodeInt32 writes v little-endian into dst and returns the unused tail.
func EncodeInt32(dst []byte, v int32) []byte { return EncodeUint32(dst, uint32(v)) }

// EncodeInt64 writes v little-endian into dst and returns the unused tail.
func EncodeInt64(dst []byte, v int64) []byte { return EncodeUint64(dst, uint64(v)) }

// EncodeFloat32 writes the IEEE-754 bits of v little-endian into dst.
func EncodeFloat32(dst []byte, v float32) []byte {
	return EncodeUint32(dst, math.Float32bits(v))
}

// EncodeFloat64 writes the IEEE-754 bits of v little-endian into dst.
func EncodeFloat64(dst []byte, v float64) []byte {
	return EncodeUint64(dst, math.Float64bits(v))
}

// EncodeBool writes a single 0 or 1 byte into dst.
func EncodeBool(dst []byte, v bool) []byte {
	if v {
		dst[0] = 1
	} else {
		dst[0] = 0
	}
	return dst[1:]
}

// EncodeString writes a 4-byte little-endian length followed by the UTF-8
// bytes of s.
func EncodeString(dst []byte, s string) []byte {
	binary.LittleEndian.PutUint32(dst, uint32(len(s)))
	n := copy(dst[lenPrefixSize:], s)
	return dst[lenPrefixSize+n:]
}

// EncodeBytes writes a 4-byte little-endian length followed by b.
func EncodeBytes(dst []byte, b []byte) []byte {
	binary.LittleEndian.PutUint32(dst, uint32(len(b)))
	n := copy(dst[lenPrefixSize:], b)
	return dst[lenPrefixSize+n:]
}

// StringSize returns the encoded size of s, including framing.
func StringSize(s string) int { return lenPrefixSize + len(s) }

// BytesSize returns the encoded size of b, including framing.
func BytesSize(b []byte) int { return lenPrefixSize + len(b) }

// DecodeUint8 decodes one byte written by EncodeUint8.
func DecodeUint8(src []byte) (string, []byte) {
	chunk, rest := decodeSplit(src, 1)
	return strconv.FormatUint(uint64(chunk[0]), 10), rest
}

// DecodeUint16 decodes two bytes written by EncodeUint16.
func DecodeUint16(src []byte) (string, []byte) {
	chunk, rest := decodeSplit(src, 2)
	return strconv.FormatUint(uint64(binary.LittleEndian.Uint16(chunk)), 10), rest
}

// DecodeUint32 decodes four bytes written by EncodeUint32.
func DecodeUint32(src []byte) (string, []byte) {
	chunk, rest := decodeSplit(src, 4)
	return strconv.FormatUint(uint64(binary.LittleEndian.Uint32(chunk)), 10), rest
}

// DecodeUint64 decodes eight bytes written by EncodeUint64.
func DecodeUint64(src []byte) (string, []byte) {
	chunk, rest := decodeSplit(src, 8)
	return strconv.FormatUint(binary.LittleEndian.Uint64(chunk), 10), rest
}

// DecodeInt8 decodes one byte written by EncodeInt8.
func DecodeInt8(src []byte) (string, []byte) {
	chunk, rest := decodeSplit(src, 1)
	return strconv.FormatInt(int64(int8(chunk[0])), 10), rest
}

// DecodeInt16 decodes two bytes written by EncodeInt16.
func DecodeInt16(src []byte) (string, []byte) {
	chunk, rest := decodeSplit(src, 2)
	return strconv.FormatInt(int64(int16(binary.LittleEndian.Uint16(chunk))), 10), rest
}

// DecodeInt32 decodes four bytes written by EncodeInt32.
func DecodeInt32(src []byte) (string, []byte) {
	chunk, rest := decodeSplit(src, 4)
	return strconv.FormatInt(int64(int32(binary.LittleEndian.Uint32(chunk))), 10), rest
}

// DecodeInt64 decodes eight bytes written by EncodeInt64.
func DecodeInt64(src []byte) (string, []byte) {
	chunk, rest := decodeSplit(src, 8)
	return strconv.FormatInt(int64(binary.LittleEndian.Uint64(chunk)), 10), rest
}

// DecodeFloat32 decodes four bytes written by EncodeFloat32.
func DecodeFloat32(src []byte) (string, []byte) {
	chunk, rest := decodeSplit(src, 4)
	f := math.Float32frombits(binary.LittleEndian.Uint32(chunk))
	return strconv.FormatFloat(float64(f), 'g', -1, 32), rest
}

// DecodeFloat64 decodes eight bytes written by EncodeFloat64.
func DecodeFloat64(src []byte) (string, []byte) {
	chunk, rest := decodeSplit(src, 8)
	f := math.Float64frombits(binary.LittleEndian.Uint64(chunk))
	return strconv.FormatFloat(f, 'g', -1, 64), rest
}

// DecodeBool decodes one byte written by EncodeBool.
func DecodeBool(src []byte) (string, []byte) {
	chunk, rest := decodeSplit(src, 1)
	if chunk[0] != 0 {
		return "true", rest
	}
	return "false", rest
}

// DecodeString decodes a length-prefixed string written by EncodeString.
func DecodeString(src []byte) (string, []byte) {
	lenChunk, rest := decodeSplit(src, lenPrefixSize)
	n := int(binary.LittleEndian.Uint32(lenChunk))
	chunk, rest := decodeSplit(rest, n)
	return string(chunk), rest
}

// DecodeBytes decodes a length-prefixed byte sequence written by
// EncodeBytes. The token uses the canonical display form of a byte slice.
func DecodeBytes(src []byte) (string, []byte) {
	lenChunk, rest := decodeSplit(src, lenPrefixSize)
	n := int(binary.LittleEndian.Uint32(lenChunk))
	chunk, rest := decodeSplit(rest, n)
	return fmt.Sprintf("%v", chunk), rest
}

// EncodeSlice writes a 4-byte little-endian element count followed by each
// element's encoding back-to-back.
func EncodeSlice[T any](dst []byte, xs []T, encode func([]byte, T) []byte) []byte {
	binary.LittleEndian.PutUint32(dst, uint32(len(xs)))
	dst = dst[lenPrefixSize:]
	for _, x := range xs {
		dst = encode(dst, x)
	}
	return dst
}

// SliceSize returns the encoded size of xs given a per-element size
// function, including the count prefix.
func SliceSize[T any](xs []T, size func(T) int) int {
	n := lenPrefixSize
	for _, x := range xs {
		n += size(x)
	}
	return n
}

// DecodeSlice returns a decoder for a sequence written by EncodeSlice whose
// elements decode with elem. The token is the canonical display form of a
// slice: "[e1 e2 e3]".
func DecodeSlice(elem DecodeFn) DecodeFn {
	return func(src []byte) (string, []byte) {
		lenChunk, rest := decodeSplit(src, lenPrefixSize)
		count := int(binary.LittleEndian.Uint32(lenChunk))
		var sb strings.Builder
		sb.WriteByte('[')
		for i := 0; i < count; i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			var tok string
			tok, rest = elem(rest)
			sb.WriteString(tok)
		}
		sb.WriteByte(']')
		return sb.String(), rest
	}
}

// DecodeTuple returns a decoder for values encoded back-to-back as one
// payload, yielding a "(a, b, ...)" token. Arity follows the number of
// decoders supplied; Tuple on the encode side caps it at eight.
func DecodeTuple(elems ...DecodeFn) DecodeFn {
	return func(src []byte) (string, []byte) {
		var sb strings.Builder
		sb.WriteByte('(')
		rest := src
		for i, elem := range elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			var tok string
			tok, rest = elem(rest)
			sb.WriteString(tok)
		}
		sb.WriteByte(')')
		return sb.String(), rest
	}
}
