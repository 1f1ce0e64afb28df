// Package p01 implements AUTOSAR E2E Profile 1: a 1-byte CRC-8 and a 4-bit
// counter sharing a single header byte, intended for CAN frames as small as
// 2 bytes. The data ID is never serialized into the frame; it is folded into
// the CRC so a receiver wired to the wrong signal fails the check.
package p01

import (
	"github.com/go-e2e/e2e/crc"
	"github.com/go-e2e/e2e/e2eerr"
)

// DataIDMode selects how the 16-bit data ID is mixed into the CRC.
type DataIDMode int

const (
	// DataIDBoth mixes in both the low and high data-ID bytes on every call.
	DataIDBoth DataIDMode = iota
	// DataIDAlt mixes in the low byte on an even counter, the high byte on odd.
	DataIDAlt
	// DataIDLow mixes in only the low data-ID byte.
	DataIDLow
	// DataIDNibble mixes in the low data-ID byte and records the high data-ID
	// nibble in the unused header nibbles.
	DataIDNibble
)

const profile = "p01"

const minLength = 2
const maxLength = 256

// Protect writes the counter, optionally incrementing it, lays out the data
// ID per mode, and writes the CRC-8 into buf[0].
func Protect(buf []byte, dataID uint16, length int, mode DataIDMode, incrementCounter bool) error {
	if err := validate(buf, length, mode); err != nil {
		return err
	}

	counter := buf[1] & 0x0F
	if incrementCounter {
		counter = (counter + 1) & 0x0F
	}
	buf[1] = (buf[1] & 0xF0) | counter

	dl := byte(dataID)
	dh := byte(dataID >> 8)
	if mode == DataIDNibble {
		buf[1] = (buf[1] & 0x0F) | (dh&0x0F)<<4
		if length > 2 {
			buf[2] = (buf[2] & 0x0F) | (dh&0xF0)
		}
	}

	input := crcInput(buf, counter, dl, dh, length, mode)
	buf[0] = crc.CalculateCRC8(input, 0, true)
	return nil
}

// Check recomputes the CRC over buf and reports whether it matches the
// stored value.
func Check(buf []byte, dataID uint16, length int, mode DataIDMode) (bool, error) {
	if err := validate(buf, length, mode); err != nil {
		return false, err
	}

	counter := buf[1] & 0x0F
	dl := byte(dataID)
	dh := byte(dataID >> 8)

	input := crcInput(buf, counter, dl, dh, length, mode)
	return crc.CalculateCRC8(input, 0, true) == buf[0], nil
}

// crcInput builds the CRC-8 input sequence: the counter byte, the payload
// bytes from index 2 to length-1, and the mode-selected data-ID byte(s).
func crcInput(buf []byte, counter, dl, dh byte, length int, mode DataIDMode) []byte {
	payload := buf[2:length]
	out := make([]byte, 0, 1+len(payload)+2)
	out = append(out, counter)
	out = append(out, payload...)

	switch mode {
	case DataIDBoth:
		out = append(out, dl, dh)
	case DataIDAlt:
		if counter%2 == 0 {
			out = append(out, dl)
		} else {
			out = append(out, dh)
		}
	case DataIDLow:
		out = append(out, dl)
	case DataIDNibble:
		out = append(out, dl, 0x00)
	}
	return out
}

func validate(buf []byte, length int, mode DataIDMode) error {
	if length < minLength || length > maxLength {
		return e2eerr.New(profile, e2eerr.KindLengthTooSmall, "length must be between 2 and 256")
	}
	if len(buf) < length {
		return e2eerr.New(profile, e2eerr.KindBufferTooSmall, "buffer shorter than length")
	}
	switch mode {
	case DataIDBoth, DataIDAlt, DataIDLow, DataIDNibble:
	default:
		return e2eerr.New(profile, e2eerr.KindUnknownMode, "unrecognised data id mode")
	}
	return nil
}
