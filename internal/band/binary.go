package band

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"math"
)

// bandSize is bytes per band: x, y, width as uint16 then r, g, b, a
const bandSize = 10

var (
	// ErrTooLarge implies a band coordinate that does not fit in 16 bits
	ErrTooLarge = fmt.Errorf("band does not fit binary encoding")

	// ErrCorrupt implies data that is not a whole number of bands
	ErrCorrupt = fmt.Errorf("band data is corrupt")
)

// Marshal appends the binary form of bands to dst: a uint32 count followed
// by fixed size big endian records.
func Marshal(bands []Band, dst []byte) ([]byte, error) {
	if uint64(len(bands)) > math.MaxUint32 {
		return nil, ErrTooLarge
	}
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(bands)))
	for _, b := range bands {
		if !fits16(b.X) || !fits16(b.Y) || !fits16(b.Width) {
			return nil, fmt.Errorf("%w: %+v", ErrTooLarge, b)
		}
		dst = binary.BigEndian.AppendUint16(dst, uint16(b.X))
		dst = binary.BigEndian.AppendUint16(dst, uint16(b.Y))
		dst = binary.BigEndian.AppendUint16(dst, uint16(b.Width))
		dst = append(dst, b.Color.R, b.Color.G, b.Color.B, b.Color.A)
	}
	return dst, nil
}

// Unmarshal appends the bands held in data to dst[:0].
func Unmarshal(data []byte, dst []Band) ([]Band, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: missing count", ErrCorrupt)
	}
	n := binary.BigEndian.Uint32(data)
	data = data[4:]
	if uint64(len(data)) != uint64(n)*bandSize {
		return nil, fmt.Errorf("%w: want %d bands, have %d bytes", ErrCorrupt, n, len(data))
	}

	dst = dst[:0]
	for i := 0; i < len(data); i += bandSize {
		rec := data[i : i+bandSize]
		dst = append(dst, Band{
			X:     int(binary.BigEndian.Uint16(rec[0:])),
			Y:     int(binary.BigEndian.Uint16(rec[2:])),
			Width: int(binary.BigEndian.Uint16(rec[4:])),
			Color: color.RGBA{R: rec[6], G: rec[7], B: rec[8], A: rec[9]},
		})
	}
	return dst, nil
}

func fits16(v int) bool {
	return v >= 0 && v <= math.MaxUint16
}
