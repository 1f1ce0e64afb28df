// Package p02 implements AUTOSAR E2E Profile 2: a 1-byte CRC-8H2F and a
// 4-bit counter sharing a single header byte, plus a 16-entry data-ID table
// indexed by the counter so the set of valid data IDs rotates every frame.
package p02

import (
	"github.com/go-e2e/e2e/crc"
	"github.com/go-e2e/e2e/e2eerr"
)

const profile = "p02"

const minLength = 1

// DataIDListSize is the fixed size of the data-ID table indexed by counter.
const DataIDListSize = 16

// Protect increments the counter (mod 16), writes it into the low nibble of
// buf[1], and writes the CRC-8H2F into buf[0]. length is the number of bytes
// in buf following the CRC byte, so the total frame occupies buf[0:length+1].
func Protect(buf []byte, length int, dataIDList []byte) error {
	if err := validate(buf, length, dataIDList); err != nil {
		return err
	}

	counter := (buf[1] & 0x0F) + 1
	counter &= 0x0F
	buf[1] = (buf[1] & 0xF0) | counter

	buf[0] = crcOf(buf, length, dataIDList, counter)
	return nil
}

// Check recomputes the CRC over buf using its stored counter and reports
// whether it matches buf[0].
func Check(buf []byte, length int, dataIDList []byte) (bool, error) {
	if err := validate(buf, length, dataIDList); err != nil {
		return false, err
	}

	counter := buf[1] & 0x0F
	return crcOf(buf, length, dataIDList, counter) == buf[0], nil
}

func crcOf(buf []byte, length int, dataIDList []byte, counter byte) byte {
	eng := crc.EngineCRC8H2F
	acc := eng.Init()
	acc = eng.Update(acc, buf[1:length+1])
	acc = eng.Update(acc, []byte{dataIDList[counter]})
	return uint8(eng.Finalize(acc))
}

func validate(buf []byte, length int, dataIDList []byte) error {
	if length < minLength {
		return e2eerr.New(profile, e2eerr.KindLengthTooSmall, "length must be at least 1")
	}
	if len(buf) < length+1 {
		return e2eerr.New(profile, e2eerr.KindBufferTooSmall, "buffer shorter than length+1")
	}
	if len(dataIDList) != DataIDListSize {
		return e2eerr.New(profile, e2eerr.KindInvalidDataIDList, "data id list must have 16 entries")
	}
	return nil
}
