// Package p05 implements AUTOSAR E2E Profile 5: a little-endian CRC-16
// followed by a 1-byte counter, with the data ID mixed into the CRC as a
// little-endian suffix rather than serialized into the frame.
package p05

import (
	"encoding/binary"

	"github.com/go-e2e/e2e/crc"
	"github.com/go-e2e/e2e/e2eerr"
)

const profile = "p05"

// CRCSize is the size in bytes of the CRC field itself, at the front of the
// header; the counter byte is the first byte of the length-counted region.
const CRCSize = 2

// Protect writes the (optionally incremented) counter at offset+2 and the
// little-endian CRC-16 at offset..offset+2. length is the number of bytes
// following the CRC field (counter plus payload).
func Protect(buf []byte, length int, dataID uint16, offset int, incrementCounter bool) error {
	if err := validate(buf, length, offset); err != nil {
		return err
	}

	counter := buf[offset+2]
	if incrementCounter {
		counter++
	}
	buf[offset+2] = counter

	binary.LittleEndian.PutUint16(buf[offset:], computeCRC(buf, length, dataID, offset))
	return nil
}

// Check recomputes the CRC over buf and reports whether it matches the
// stored value.
func Check(buf []byte, length int, dataID uint16, offset int) (bool, error) {
	if err := validate(buf, length, offset); err != nil {
		return false, err
	}
	stored := binary.LittleEndian.Uint16(buf[offset:])
	return computeCRC(buf, length, dataID, offset) == stored, nil
}

func computeCRC(buf []byte, length int, dataID uint16, offset int) uint16 {
	eng := crc.EngineCRC16
	acc := eng.Init()
	acc = eng.Update(acc, buf[:offset])
	acc = eng.Update(acc, buf[offset+2:offset+2+length])
	var dataIDLE [2]byte
	binary.LittleEndian.PutUint16(dataIDLE[:], dataID)
	acc = eng.Update(acc, dataIDLE[:])
	return uint16(eng.Finalize(acc))
}

func validate(buf []byte, length, offset int) error {
	if offset < 0 {
		return e2eerr.New(profile, e2eerr.KindBufferTooSmall, "offset must not be negative")
	}
	if length < 1 {
		return e2eerr.New(profile, e2eerr.KindLengthTooSmall, "length must include at least the counter byte")
	}
	if len(buf) < offset+CRCSize+length {
		return e2eerr.New(profile, e2eerr.KindBufferTooSmall, "buffer shorter than offset+crc+length")
	}
	return nil
}
