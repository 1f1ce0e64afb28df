// Package p06 implements AUTOSAR E2E Profile 6: a big-endian CRC-16 header
// carrying its own big-endian length field and a 1-byte counter, with the
// data ID mixed into the CRC as a big-endian suffix.
package p06

import (
	"encoding/binary"

	"github.com/go-e2e/e2e/crc"
	"github.com/go-e2e/e2e/e2eerr"
)

const profile = "p06"

// HeaderSize is the CRC, length and counter bytes the profile occupies at
// offset: 2 + 2 + 1.
const HeaderSize = 5

// Protect writes length and the (optionally incremented) counter into the
// header, then computes and writes the big-endian CRC-16 at offset..offset+2.
// length is the end of the protected region, counted from the start of buf;
// the CRC covers [0, length) with the CRC field itself excised.
func Protect(buf []byte, length int, dataID uint16, offset int, incrementCounter bool) error {
	if err := validate(buf, length, offset); err != nil {
		return err
	}

	binary.BigEndian.PutUint16(buf[offset+2:], uint16(length))

	counter := buf[offset+4]
	if incrementCounter {
		counter++
	}
	buf[offset+4] = counter

	binary.BigEndian.PutUint16(buf[offset:], computeCRC(buf, length, dataID, offset))
	return nil
}

// Check recomputes the CRC over buf and reports whether it matches the
// stored value.
func Check(buf []byte, length int, dataID uint16, offset int) (bool, error) {
	if err := validate(buf, length, offset); err != nil {
		return false, err
	}
	stored := binary.BigEndian.Uint16(buf[offset:])
	return computeCRC(buf, length, dataID, offset) == stored, nil
}

func computeCRC(buf []byte, length int, dataID uint16, offset int) uint16 {
	eng := crc.EngineCRC16
	acc := eng.Init()
	acc = eng.Update(acc, buf[:offset])
	acc = eng.Update(acc, buf[offset+2:length])
	var dataIDBE [2]byte
	binary.BigEndian.PutUint16(dataIDBE[:], dataID)
	acc = eng.Update(acc, dataIDBE[:])
	return uint16(eng.Finalize(acc))
}

func validate(buf []byte, length, offset int) error {
	if offset < 0 {
		return e2eerr.New(profile, e2eerr.KindBufferTooSmall, "offset must not be negative")
	}
	if offset+HeaderSize > length {
		return e2eerr.New(profile, e2eerr.KindLengthTooSmall, "length too small to hold header at offset")
	}
	if len(buf) < length {
		return e2eerr.New(profile, e2eerr.KindBufferTooSmall, "buffer shorter than length")
	}
	return nil
}
