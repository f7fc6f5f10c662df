package audio

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	// One second of 24 kHz mono 16-bit audio.
	pcm := make([]byte, SampleRate*bytesPerSample)
	if got := Duration(pcm); got != time.Second {
		t.Errorf("expected 1s, got %v", got)
	}
}

func TestDecodeBase64(t *testing.T) {
	pcm := []byte{0x01, 0x00, 0x02, 0x00}
	got, err := DecodeBase64(base64.StdEncoding.EncodeToString(pcm))
	if err != nil {
		t.Fatalf("DecodeBase64: %v", err)
	}
	if !bytes.Equal(got, pcm) {
		t.Errorf("round trip mismatch")
	}

	if _, err := DecodeBase64(""); !errors.Is(err, ErrEmptyAudio) {
		t.Errorf("expected ErrEmptyAudio, got %v", err)
	}
	if _, err := DecodeBase64("!!!not base64!!!"); !errors.Is(err, ErrInvalidAudio) {
		t.Errorf("expected ErrInvalidAudio, got %v", err)
	}
}

func TestWriteWAVHeader(t *testing.T) {
	pcm := []byte{0x01, 0x00, 0x02, 0x00}
	var buf bytes.Buffer
	if err := WriteWAV(&buf, pcm); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	out := buf.Bytes()
	if len(out) != 44+len(pcm) {
		t.Fatalf("expected %d bytes, got %d", 44+len(pcm), len(out))
	}
	if string(out[0:4]) != "RIFF" || string(out[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE magic")
	}
	if !bytes.Equal(out[44:], pcm) {
		t.Error("sample data not appended after header")
	}
}
