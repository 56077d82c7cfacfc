package lazylog

import "sync"

// ArgKind classifies how a call-site argument slot was produced.
type ArgKind uint8

const (
	// KindFmtOnly marks an argument pre-formatted into a string at the call
	// site. This is the slow path: the formatting cost is paid eagerly.
	KindFmtOnly ArgKind = iota + 1
	// KindSerialized marks an argument encoded through the Serializer
	// contract. This is the fast path: only raw bytes are copied.
	KindSerialized
)

// Slot describes one argument position of a call site: an optional field
// name and the decoder matching the encoding the call site writes there.
// Payloads carry no type tags, so correctness relies on the slot's decoder
// matching the encoder exactly.
type Slot struct {
	Name   string
	Kind   ArgKind
	Decode DecodeFn
}

// Serialized returns an unnamed fast-path slot decoding with decode.
func Serialized(decode DecodeFn) Slot {
	return Slot{Kind: KindSerialized, Decode: decode}
}

// SerializedNamed returns a named fast-path slot decoding with decode.
func SerializedNamed(name string, decode DecodeFn) Slot {
	return Slot{Name: name, Kind: KindSerialized, Decode: decode}
}

// Formatted returns an unnamed slot for a call-site-formatted string.
func Formatted() Slot {
	return Slot{Kind: KindFmtOnly, Decode: DecodeString}
}

// FormattedNamed returns a named slot for a call-site-formatted string.
func FormattedNamed(name string) Slot {
	return Slot{Name: name, Kind: KindFmtOnly, Decode: DecodeString}
}

// Callsite is the immutable metadata of one logging source location. It is
// created once, registered process-wide, and referenced from queue records
// by its stable id; the metadata itself is never copied into the queue.
type Callsite struct {
	id       uint64
	level    Level
	target   string
	file     string
	line     int
	format   string
	slots    []Slot
	template template
}

// NewCallsite registers the metadata for one logging source location and
// returns its process-lifetime handle. Typical use creates call sites in
// package variable initializers, one per source location. format follows
// the placeholder syntax documented on the package: "{}" consumes unnamed
// arguments in order, "{name}" resolves against slot names, "{{" and "}}"
// escape literal braces.
func NewCallsite(level Level, target, file string, line int, format string, slots ...Slot) *Callsite {
	cs := &Callsite{
		level:    level,
		target:   target,
		file:     file,
		line:     line,
		format:   format,
		slots:    slots,
		template: parseTemplate(format),
	}
	for i := range cs.slots {
		if cs.slots[i].Decode == nil {
			cs.slots[i].Decode = DecodeString
		}
	}
	cs.id = registerCallsite(cs)
	return cs
}

// Level returns the call site's severity.
func (cs *Callsite) Level() Level { return cs.level }

// Target returns the module or source path the call site was declared with.
func (cs *Callsite) Target() string { return cs.target }

// File returns the source file name.
func (cs *Callsite) File() string { return cs.file }

// Line returns the source line.
func (cs *Callsite) Line() int { return cs.line }

// Format returns the original format-string template.
func (cs *Callsite) Format() string { return cs.format }

// Slots returns the argument descriptors in declaration order. The returned
// slice must not be mutated.
func (cs *Callsite) Slots() []Slot { return cs.slots }

// callsiteRegistry maps stable ids to call-site metadata. Registration
// happens during program initialization; lookups happen on the flush path
// only, so a mutex-guarded slice is enough.
var callsiteRegistry = struct {
	sync.RWMutex
	sites []*Callsite
}{}

func registerCallsite(cs *Callsite) uint64 {
	callsiteRegistry.Lock()
	defer callsiteRegistry.Unlock()
	callsiteRegistry.sites = append(callsiteRegistry.sites, cs)
	return uint64(len(callsiteRegistry.sites))
}

func lookupCallsite(id uint64) (*Callsite, bool) {
	callsiteRegistry.RLock()
	defer callsiteRegistry.RUnlock()
	if id == 0 || id > uint64(len(callsiteRegistry.sites)) {
		return nil, false
	}
	return callsiteRegistry.sites[id-1], true
}
