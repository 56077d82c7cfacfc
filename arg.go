package lazylog

import (
	"fmt"
	"math"
)

type argKind uint8

const (
	argFixed argKind = iota // little-endian integer image, 1..8 bytes
	argString
	argBytes
	argSerializer
	argGroup
)

// Arg carries one logging argument across the hot path. Constructors exist
// for every built-in encoder; composite values plug in through Value. Arg is
// a small value type so that passing primitives does not allocate.
type Arg struct {
	kind  argKind
	width uint8
	num   uint64
	str   string
	bytes []byte
	ser   Serializer
	group []Arg
}

// Int logs an int (64-bit image).
func Int(v int) Arg { return Arg{kind: argFixed, width: 8, num: uint64(int64(v))} }

// Int8 logs an int8.
func Int8(v int8) Arg { return Arg{kind: argFixed, width: 1, num: uint64(uint8(v))} }

// Int16 logs an int16.
func Int16(v int16) Arg { return Arg{kind: argFixed, width: 2, num: uint64(uint16(v))} }

// Int32 logs an int32.
func Int32(v int32) Arg { return Arg{kind: argFixed, width: 4, num: uint64(uint32(v))} }

// Int64 logs an int64.
func Int64(v int64) Arg { return Arg{kind: argFixed, width: 8, num: uint64(v)} }

// Uint logs a uint (64-bit image).
func Uint(v uint) Arg { return Arg{kind: argFixed, width: 8, num: uint64(v)} }

// Uint8 logs a uint8.
func Uint8(v uint8) Arg { return Arg{kind: argFixed, width: 1, num: uint64(v)} }

// Uint16 logs a uint16.
func Uint16(v uint16) Arg { return Arg{kind: argFixed, width: 2, num: uint64(v)} }

// Uint32 logs a uint32.
func Uint32(v uint32) Arg { return Arg{kind: argFixed, width: 4, num: uint64(v)} }

// Uint64 logs a uint64.
func Uint64(v uint64) Arg { return Arg{kind: argFixed, width: 8, num: v} }

// Float32 logs a float32 as its IEEE-754 bits.
func Float32(v float32) Arg { return Arg{kind: argFixed, width: 4, num: uint64(math.Float32bits(v))} }

// Float64 logs a float64 as its IEEE-754 bits.
func Float64(v float64) Arg { return Arg{kind: argFixed, width: 8, num: math.Float64bits(v)} }

// Bool logs a bool as a single byte.
func Bool(v bool) Arg {
	var n uint64
	if v {
		n = 1
	}
	return Arg{kind: argFixed, width: 1, num: n}
}

// Str logs a string, length-prefixed. The bytes are copied into the queue at
// the call site; the string need not outlive the call.
func Str(s string) Arg { return Arg{kind: argString, str: s} }

// Bytes logs a byte slice, length-prefixed. The bytes are copied into the
// queue at the call site.
func Bytes(b []byte) Arg { return Arg{kind: argBytes, bytes: b} }

// Value logs any type implementing Serializer. The matching slot in the
// call-site metadata must carry the type's decoder.
func Value(v Serializer) Arg { return Arg{kind: argSerializer, ser: v} }

// Tuple groups up to eight arguments into one slot, encoded back-to-back.
// The matching slot decodes with DecodeTuple.
func Tuple(args ...Arg) Arg {
	if len(args) > 8 {
		panic("lazylog: tuple arity is capped at 8")
	}
	return Arg{kind: argGroup, group: args}
}

// Display eagerly formats v with the fmt package and logs the result as a
// string. This is the slow path: formatting happens at the call site and
// allocates. Use it for types without a Serializer implementation; the
// matching slot decodes with DecodeString.
func Display(v any) Arg { return Str(fmt.Sprint(v)) }

func (a *Arg) size() int {
	switch a.kind {
	case argFixed:
		return int(a.width)
	case argString:
		return StringSize(a.str)
	case argBytes:
		return BytesSize(a.bytes)
	case argSerializer:
		return a.ser.Size()
	case argGroup:
		n := 0
		for i := range a.group {
			n += a.group[i].size()
		}
		return n
	}
	return 0
}

func (a *Arg) encode(dst []byte) []byte {
	switch a.kind {
	case argFixed:
		v := a.num
		for i := uint8(0); i < a.width; i++ {
			dst[i] = byte(v)
			v >>= 8
		}
		return dst[a.width:]
	case argString:
		return EncodeString(dst, a.str)
	case argBytes:
		return EncodeBytes(dst, a.bytes)
	case argSerializer:
		return a.ser.Encode(dst)
	case argGroup:
		for i := range a.group {
			dst = a.group[i].encode(dst)
		}
		return dst
	}
	return dst
}
