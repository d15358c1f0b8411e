package vm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImageBigEndian(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x01, 0xFF, 0x00, 0x00, 0x02}
	words, err := DecodeImage(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x00000001, 0xFF000002}, words)
}

func TestDecodeImageRejectsShortTrailingGroup(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00}
	_, err := DecodeImage(bytes.NewReader(data))
	assert.Error(t, err)
}

func TestDecodeImageEmpty(t *testing.T) {
	words, err := DecodeImage(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Empty(t, words)
}
