package lazylog

import (
	"math"
	"testing"
)

func TestIntegerRoundTrips(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		encode func([]byte) []byte
		decode DecodeFn
		want   string
	}{
		{"uint8 max", 1, func(b []byte) []byte { return EncodeUint8(b, 255) }, DecodeUint8, "255"},
		{"uint16", 2, func(b []byte) []byte { return EncodeUint16(b, 51966) }, DecodeUint16, "51966"},
		{"uint32", 4, func(b []byte) []byte { return EncodeUint32(b, 4_000_000_000) }, DecodeUint32, "4000000000"},
		{"uint64 max", 8, func(b []byte) []byte { return EncodeUint64(b, math.MaxUint64) }, DecodeUint64, "18446744073709551615"},
		{"int8 min", 1, func(b []byte) []byte { return EncodeInt8(b, -128) }, DecodeInt8, "-128"},
		{"int16 negative", 2, func(b []byte) []byte { return EncodeInt16(b, -12345) }, DecodeInt16, "-12345"},
		{"int32", 4, func(b []byte) []byte { return EncodeInt32(b, -2_000_000_000) }, DecodeInt32, "-2000000000"},
		{"int64 min", 8, func(b []byte) []byte { return EncodeInt64(b, math.MinInt64) }, DecodeInt64, "-9223372036854775808"},
		{"int64 zero", 8, func(b []byte) []byte { return EncodeInt64(b, 0) }, DecodeInt64, "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, 16)
			rest := tc.encode(buf)
			if written := len(buf) - len(rest); written != tc.size {
				t.Fatalf("encode wrote %d bytes, want %d", written, tc.size)
			}
			tok, rest2 := tc.decode(buf)
			if tok != tc.want {
				t.Errorf("token: got %q want %q", tok, tc.want)
			}
			if consumed := len(buf) - len(rest2); consumed != tc.size {
				t.Errorf("decode consumed %d bytes, want %d", consumed, tc.size)
			}
		})
	}
}

func TestFloatRoundTrips(t *testing.T) {
	buf := make([]byte, 8)
	EncodeFloat64(buf, 3.25)
	if tok, _ := DecodeFloat64(buf); tok != "3.25" {
		t.Errorf("float64: got %q want %q", tok, "3.25")
	}
	EncodeFloat64(buf, math.Inf(-1))
	if tok, _ := DecodeFloat64(buf); tok != "-Inf" {
		t.Errorf("float64 -inf: got %q", tok)
	}
	EncodeFloat32(buf, 1.5)
	if tok, rest := DecodeFloat32(buf); tok != "1.5" || len(buf)-len(rest) != 4 {
		t.Errorf("float32: got %q, consumed %d", tok, len(buf)-len(rest))
	}
}

func TestBoolRoundTrip(t *testing.T) {
	buf := make([]byte, 1)
	EncodeBool(buf, true)
	if tok, _ := DecodeBool(buf); tok != "true" {
		t.Errorf("true: got %q", tok)
	}
	EncodeBool(buf, false)
	if tok, _ := DecodeBool(buf); tok != "false" {
		t.Errorf("false: got %q", tok)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "héllo wörld", "with\nnewline"} {
		buf := make([]byte, StringSize(s))
		rest := EncodeString(buf, s)
		if len(rest) != 0 {
			t.Fatalf("%q: encode left %d bytes", s, len(rest))
		}
		tok, rest2 := DecodeString(buf)
		if tok != s {
			t.Errorf("%q: decoded %q", s, tok)
		}
		if len(rest2) != 0 {
			t.Errorf("%q: decode left %d bytes", s, len(rest2))
		}
	}
}

func TestBytesRoundTrip(t *testing.T) {
	b := []byte{1, 2, 250}
	buf := make([]byte, BytesSize(b))
	EncodeBytes(buf, b)
	tok, rest := DecodeBytes(buf)
	if tok != "[1 2 250]" {
		t.Errorf("bytes token: got %q", tok)
	}
	if len(rest) != 0 {
		t.Errorf("decode left %d bytes", len(rest))
	}
}

func TestSliceRoundTrip(t *testing.T) {
	xs := []int64{10, -20, 30}
	size := SliceSize(xs, func(int64) int { return 8 })
	if size != 4+3*8 {
		t.Fatalf("slice size: got %d", size)
	}
	buf := make([]byte, size)
	rest := EncodeSlice(buf, xs, EncodeInt64)
	if len(rest) != 0 {
		t.Fatalf("encode left %d bytes", len(rest))
	}
	tok, rest2 := DecodeSlice(DecodeInt64)(buf)
	if tok != "[10 -20 30]" {
		t.Errorf("slice token: got %q", tok)
	}
	if len(rest2) != 0 {
		t.Errorf("decode left %d bytes", len(rest2))
	}
}

func TestEmptySliceRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	EncodeSlice(buf, nil, EncodeInt64)
	if tok, _ := DecodeSlice(DecodeInt64)(buf); tok != "[]" {
		t.Errorf("empty slice token: got %q", tok)
	}
}

func TestTupleRoundTrip(t *testing.T) {
	arg := Tuple(Int64(7), Str("x"), Bool(true))
	buf := make([]byte, arg.size())
	rest := arg.encode(buf)
	if len(rest) != 0 {
		t.Fatalf("encode left %d bytes", len(rest))
	}
	tok, rest2 := DecodeTuple(DecodeInt64, DecodeString, DecodeBool)(buf)
	if tok != "(7, x, true)" {
		t.Errorf("tuple token: got %q", tok)
	}
	if len(rest2) != 0 {
		t.Errorf("decode left %d bytes", len(rest2))
	}
}

type point struct {
	x, y int32
}

func (p point) Size() int { return 8 }

func (p point) Encode(dst []byte) []byte {
	dst = EncodeInt32(dst, p.x)
	return EncodeInt32(dst, p.y)
}

func decodePoint(src []byte) (string, []byte) {
	x, rest := DecodeInt32(src)
	y, rest := DecodeInt32(rest)
	return "point{x: " + x + ", y: " + y + "}", rest
}

func TestCompositeSerializerRoundTrip(t *testing.T) {
	arg := Value(point{x: 3, y: -4})
	buf := make([]byte, arg.size())
	arg.encode(buf)
	tok, rest := decodePoint(buf)
	if tok != "point{x: 3, y: -4}" {
		t.Errorf("composite token: got %q", tok)
	}
	if len(rest) != 0 {
		t.Errorf("decode left %d bytes", len(rest))
	}
}

func TestDecodeShortBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("short decode should panic")
		}
	}()
	DecodeUint64([]byte{1, 2, 3})
}

func TestArgSizes(t *testing.T) {
	for _, tc := range []struct {
		name string
		arg  Arg
		want int
	}{
		{"int", Int(1), 8},
		{"int8", Int8(1), 1},
		{"uint16", Uint16(1), 2},
		{"float32", Float32(1), 4},
		{"bool", Bool(true), 1},
		{"str", Str("abc"), 7},
		{"bytes", Bytes([]byte{1, 2}), 6},
		{"display", Display(42), 6},
		{"tuple", Tuple(Int8(1), Bool(false)), 2},
	} {
		if got := tc.arg.size(); got != tc.want {
			t.Errorf("%s: size %d, want %d", tc.name, got, tc.want)
		}
	}
}
