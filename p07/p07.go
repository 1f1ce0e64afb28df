// Package p07 implements AUTOSAR E2E Profile 7: an 8-byte CRC-64 header
// followed by a 4-byte length, a 4-byte counter and a 4-byte data ID, the
// widest profile, suited to large SOME/IP payloads.
package p07

import (
	"encoding/binary"

	"github.com/go-e2e/e2e/crc"
	"github.com/go-e2e/e2e/e2eerr"
)

const profile = "p07"

// HeaderSize is the CRC, length, counter and data-ID bytes the profile
// occupies at offset: 8 + 4 + 4 + 4.
const HeaderSize = 20

// Protect writes length, the (optionally incremented) counter and the data
// ID at offset, then computes and writes the CRC-64 over the whole protected
// region [0, length) with the CRC field itself excised.
func Protect(buf []byte, length int, dataID uint32, offset int, incrementCounter bool) error {
	if err := validate(buf, length, offset); err != nil {
		return err
	}

	binary.BigEndian.PutUint32(buf[offset+8:], uint32(length))

	counter := binary.BigEndian.Uint32(buf[offset+12:])
	if incrementCounter {
		counter++
	}
	binary.BigEndian.PutUint32(buf[offset+12:], counter)

	binary.BigEndian.PutUint32(buf[offset+16:], dataID)

	binary.BigEndian.PutUint64(buf[offset:], computeCRC(buf, length, offset))
	return nil
}

// Check recomputes the CRC over buf and reports whether it matches the
// stored value.
func Check(buf []byte, length int, dataID uint32, offset int) (bool, error) {
	if err := validate(buf, length, offset); err != nil {
		return false, err
	}
	stored := binary.BigEndian.Uint64(buf[offset:])
	return computeCRC(buf, length, offset) == stored, nil
}

func computeCRC(buf []byte, length, offset int) uint64 {
	eng := crc.EngineCRC64
	acc := eng.Init()
	acc = eng.Update(acc, buf[:offset])
	acc = eng.Update(acc, buf[offset+8:length])
	return eng.Finalize(acc)
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
