// Package endian provides byte order utilities for decoding and encoding the
// binary fields of McLane profiler instrument files.
//
// The package combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface so that codecs can both
// read fields in place and append fields to a growing buffer through one value.
//
// All multi-byte fields in the profiler's file formats are big-endian, so most
// callers only need Instrument():
//
//	engine := endian.Instrument()
//	secs := int32(engine.Uint32(buf[16:20]))
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.BigEndian and binary.LittleEndian both satisfy this interface, so an
// EndianEngine interoperates with any code written against the standard
// library interfaces. Instances are immutable and safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Instrument returns the byte order the profiler writes its files in.
// All timestamp and record-size fields in the A/C/E/M formats are big-endian.
func Instrument() EndianEngine {
	return binary.BigEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
