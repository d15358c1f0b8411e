package vm

import (
	"encoding/binary"
	"fmt"
	"io"
)

// DecodeImage reads a byte stream and decodes it into the big-endian
// 32-bit words that become array 0's initial contents. The stream's
// length must be a multiple of 4; a short trailing group is reported
// rather than silently zero-padded.
func DecodeImage(r io.Reader) ([]uint32, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading program image: %w", err)
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("program image length %d is not a multiple of 4", len(data))
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(data[i*4:])
	}
	return words, nil
}
