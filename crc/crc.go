// Package crc implements the six CRC variants used by the AUTOSAR E2E
// protection profiles: CRC-8 (SAE J1850), CRC-8H2F, CRC-16 (CCITT-FALSE),
// CRC-32 (IEEE 802.3), CRC-32P4 and CRC-64 (ECMA-182).
//
// Each variant is a table-driven Engine built from a fixed Parameters tuple.
// Table entries are computed with github.com/snksoft/crc's exported
// bit-serial CalculateCRC, the same per-byte primitive github.com/go-gnss/spartn
// configures its MessageCRCType hashes with, rather than a
// reimplementation of that inner loop. Engine extends it with an explicit
// raw-accumulator path (Init/Update/Finalize) so a caller can compute a CRC
// over two disjoint byte ranges — the two halves of a buffer on either side
// of a CRC-field hole — without concatenating them first, which
// snksoft/crc's own Hash does not expose (its running accumulator is a
// private field, reachable only through its own sequential Write/Update
// calls on one Hash instance).
package crc

import (
	"sync"

	snkcrc "github.com/snksoft/crc"
)

// Parameters describes a CRC algorithm: its register width, polynomial,
// initial value, input/output reflection and final XOR.
type Parameters struct {
	Width      uint
	Polynomial uint64
	Init       uint64
	ReflectIn  bool
	ReflectOut bool
	FinalXor   uint64
}

// Engine is a lazily-built table-driven CRC calculator for one fixed set of
// Parameters. The zero value is not usable; construct with NewEngine. Engine
// is safe for concurrent use: its table is computed at most once, guarded by
// a sync.Once, and every other method is a pure function of its arguments.
type Engine struct {
	params Parameters
	mask   uint64

	once  sync.Once
	table [256]uint64
}

// NewEngine builds an Engine for the given Parameters. The lookup table is
// not computed until first use.
func NewEngine(params Parameters) *Engine {
	return &Engine{
		params: params,
		mask:   widthMask(params.Width),
	}
}

func widthMask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// reflect reverses the order of the low count bits of in.
func reflect(in uint64, count uint) uint64 {
	var out uint64
	for i := uint(0); i < count; i++ {
		if in&(uint64(1)<<i) != 0 {
			out |= uint64(1) << (count - i - 1)
		}
	}
	return out
}

// tableParams builds the unreflected, unscaled parameter set NewHash uses
// internally to seed its table: init and final-xor zeroed, output reflection
// matched to input reflection so the raw per-byte residue comes back as-is.
func (e *Engine) tableParams() *snkcrc.Parameters {
	return &snkcrc.Parameters{
		Width:      e.params.Width,
		Polynomial: e.params.Polynomial,
		Init:       0,
		ReflectIn:  e.params.ReflectIn,
		ReflectOut: e.params.ReflectIn,
		FinalXor:   0,
	}
}

func (e *Engine) buildTable() {
	e.once.Do(func() {
		params := e.tableParams()
		single := make([]byte, 1)
		for i := 0; i < 256; i++ {
			single[0] = byte(i)
			e.table[i] = snkcrc.CalculateCRC(params, single)
		}
	})
}

// Init returns the starting accumulator value for a first call: the
// Parameters' Init value, reflected into the table's working domain when the
// algorithm reflects its input.
func (e *Engine) Init() uint64 {
	cur := e.params.Init
	if e.params.ReflectIn {
		cur = reflect(cur, e.params.Width)
	}
	return cur & e.mask
}

// Update folds data into the running accumulator acc and returns the new
// accumulator. acc must be either the result of Init or the result of a
// previous Update on the same Engine; it is always in the raw,
// pre-reflect-out, pre-final-XOR representation, so the two halves of a
// buffer may be folded in with two Update calls around a CRC-field hole.
func (e *Engine) Update(acc uint64, data []byte) uint64 {
	e.buildTable()
	if e.params.ReflectIn {
		for _, b := range data {
			acc = e.table[byte(acc)^b] ^ (acc >> 8)
		}
		return acc & e.mask
	}
	shift := e.params.Width - 8
	for _, b := range data {
		acc = e.table[byte(acc>>shift)^b] ^ (acc << 8)
		acc &= e.mask
	}
	return acc
}

// Finalize applies output reflection and the final XOR to a raw accumulator,
// producing the CRC value a caller would compare against a received frame.
func (e *Engine) Finalize(acc uint64) uint64 {
	out := acc
	if e.params.ReflectOut != e.params.ReflectIn {
		out = reflect(out, e.params.Width)
	}
	return (out ^ e.params.FinalXor) & e.mask
}

// Calculate is the streaming entry point named directly by the external
// interface: when firstCall is true, data is hashed from the algorithm's
// initial value; when false, startValue is used directly as the prior raw
// accumulator (already unreflected, unxored) and data continues from there.
// The final XOR and output reflection are always applied before returning, so
// a caller that means to continue streaming must reverse them before passing
// the result back in as the next startValue.
func (e *Engine) Calculate(data []byte, startValue uint64, firstCall bool) uint64 {
	acc := startValue
	if firstCall {
		acc = e.Init()
	}
	acc = e.Update(acc, data)
	return e.Finalize(acc)
}

// Parameters for the six AUTOSAR E2E CRC variants (§4.1). Field values are
// fixed by the algorithms' published definitions, not configurable.
var (
	ParamsCRC8      = Parameters{Width: 8, Polynomial: 0x1D, Init: 0xFF, ReflectIn: false, ReflectOut: false, FinalXor: 0xFF}
	ParamsCRC8H2F   = Parameters{Width: 8, Polynomial: 0x2F, Init: 0xFF, ReflectIn: false, ReflectOut: false, FinalXor: 0xFF}
	ParamsCRC16     = Parameters{Width: 16, Polynomial: 0x1021, Init: 0xFFFF, ReflectIn: false, ReflectOut: false, FinalXor: 0x0000}
	ParamsCRC32     = Parameters{Width: 32, Polynomial: 0x04C11DB7, Init: 0xFFFFFFFF, ReflectIn: true, ReflectOut: true, FinalXor: 0xFFFFFFFF}
	ParamsCRC32P4   = Parameters{Width: 32, Polynomial: 0xF4ACFB13, Init: 0xFFFFFFFF, ReflectIn: true, ReflectOut: true, FinalXor: 0xFFFFFFFF}
	ParamsCRC64     = Parameters{Width: 64, Polynomial: 0x42F0E1EBA9EA3693, Init: 0xFFFFFFFFFFFFFFFF, ReflectIn: true, ReflectOut: true, FinalXor: 0xFFFFFFFFFFFFFFFF}
)

// Package-level engines, one per algorithm, shared by every profile package
// and by direct callers of the CalculateX functions below. Each builds its
// table at most once no matter how many profiles use it concurrently.
var (
	EngineCRC8    = NewEngine(ParamsCRC8)
	EngineCRC8H2F = NewEngine(ParamsCRC8H2F)
	EngineCRC16   = NewEngine(ParamsCRC16)
	EngineCRC32   = NewEngine(ParamsCRC32)
	EngineCRC32P4 = NewEngine(ParamsCRC32P4)
	EngineCRC64   = NewEngine(ParamsCRC64)
)

// Exported check/magic/xor constants per algorithm (§4.1). Check is the CRC
// of b"123456789"; Magic is the CRC of (message ++ message's own CRC bytes in
// protocol byte order) with the final XOR removed, used to self-verify an
// engine.
const (
	CRC8Check      uint8  = 0x4B
	CRC8MagicCheck uint8  = 0xC4
	CRC8XorValue   uint8  = 0xFF

	CRC8H2FCheck      uint8 = 0xDF
	CRC8H2FMagicCheck uint8 = 0x42
	CRC8H2FXorValue   uint8 = 0xFF

	CRC16Check      uint16 = 0x29B1
	CRC16MagicCheck uint16 = 0x0000
	CRC16XorValue   uint16 = 0x0000

	CRC32Check      uint32 = 0xCBF43926
	CRC32MagicCheck uint32 = 0xDEBB20E3
	CRC32XorValue   uint32 = 0xFFFFFFFF

	CRC32P4Check      uint32 = 0x1697D06A
	CRC32P4MagicCheck uint32 = 0x904CDDBF
	CRC32P4XorValue   uint32 = 0xFFFFFFFF

	CRC64Check      uint64 = 0x995DC9BBDF1939FA
	CRC64MagicCheck uint64 = 0x49958C9ABD7D353F
	CRC64XorValue   uint64 = 0xFFFFFFFFFFFFFFFF
)

// CalculateCRC8 computes SAE J1850 CRC-8 over data.
func CalculateCRC8(data []byte, startValue uint8, firstCall bool) uint8 {
	return uint8(EngineCRC8.Calculate(data, uint64(startValue), firstCall))
}

// CalculateCRC8H2F computes CRC-8H2F (AUTOSAR) over data.
func CalculateCRC8H2F(data []byte, startValue uint8, firstCall bool) uint8 {
	return uint8(EngineCRC8H2F.Calculate(data, uint64(startValue), firstCall))
}

// CalculateCRC16 computes CRC-16/CCITT-FALSE over data.
func CalculateCRC16(data []byte, startValue uint16, firstCall bool) uint16 {
	return uint16(EngineCRC16.Calculate(data, uint64(startValue), firstCall))
}

// CalculateCRC32 computes CRC-32 (IEEE 802.3) over data.
func CalculateCRC32(data []byte, startValue uint32, firstCall bool) uint32 {
	return uint32(EngineCRC32.Calculate(data, uint64(startValue), firstCall))
}

// CalculateCRC32P4 computes CRC-32P4 (AUTOSAR) over data.
func CalculateCRC32P4(data []byte, startValue uint32, firstCall bool) uint32 {
	return uint32(EngineCRC32P4.Calculate(data, uint64(startValue), firstCall))
}

// CalculateCRC64 computes CRC-64 (ECMA-182) over data.
func CalculateCRC64(data []byte, startValue uint64, firstCall bool) uint64 {
	return EngineCRC64.Calculate(data, startValue, firstCall)
}
