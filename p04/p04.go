// Package p04 implements AUTOSAR E2E Profile 4: an 8-byte header (length,
// counter, data ID) followed by a 4-byte CRC-32P4, suited to SOME/IP
// payloads where the header sits at a non-zero offset inside a larger
// buffer.
package p04

import (
	"encoding/binary"

	"github.com/go-e2e/e2e/crc"
	"github.com/go-e2e/e2e/e2eerr"
)

const profile = "p04"

// HeaderSize is the number of header+CRC bytes the profile occupies,
// starting at offset: 2 (length) + 2 (counter) + 4 (data ID) + 4 (CRC).
const HeaderSize = 12

// Protect writes length, the (optionally incremented) counter and the data
// ID at offset, then computes and writes the CRC-32P4 over the whole
// protected region [0, length) with the CRC field itself excised.
func Protect(buf []byte, length int, dataID uint32, offset int, incrementCounter bool) error {
	if err := validate(buf, length, offset); err != nil {
		return err
	}

	binary.BigEndian.PutUint16(buf[offset:], uint16(length))

	counter := binary.BigEndian.Uint16(buf[offset+2:])
	if incrementCounter {
		counter++
	}
	binary.BigEndian.PutUint16(buf[offset+2:], counter)

	binary.BigEndian.PutUint32(buf[offset+4:], dataID)

	binary.BigEndian.PutUint32(buf[offset+8:], computeCRC(buf, length, offset))
	return nil
}

// Check recomputes the CRC over buf and reports whether it matches the
// stored value.
func Check(buf []byte, length int, dataID uint32, offset int) (bool, error) {
	if err := validate(buf, length, offset); err != nil {
		return false, err
	}
	stored := binary.BigEndian.Uint32(buf[offset+8:])
	return computeCRC(buf, length, offset) == stored, nil
}

func computeCRC(buf []byte, length, offset int) uint32 {
	eng := crc.EngineCRC32P4
	acc := eng.Init()
	acc = eng.Update(acc, buf[:offset+8])
	acc = eng.Update(acc, buf[offset+12:length])
	return uint32(eng.Finalize(acc))
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
