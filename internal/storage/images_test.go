package storage

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeDataURI(t *testing.T) {
	payload := []byte("fake image bytes")
	encoded := base64.StdEncoding.EncodeToString(payload)

	// bare base64
	got, err := DecodeDataURI(encoded)
	assert.NoError(t, err)
	assert.Equal(t, payload, got)

	// full data URI
	got, err = DecodeDataURI("data:image/jpeg;base64," + encoded)
	assert.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDecodeDataURIMalformed(t *testing.T) {
	_, err := DecodeDataURI("data:image/jpeg;base64")
	assert.Error(t, err)

	_, err = DecodeDataURI("not base64 at all!!!")
	assert.Error(t, err)
}
