package audio

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"
)

// The generation service produces single-channel 16-bit PCM at 24 kHz.
const (
	SampleRate     = 24000
	channelCount   = 1
	bytesPerSample = 2
)

var (
	// ErrEmptyAudio indicates a playback request with no sample data.
	ErrEmptyAudio = errors.New("empty audio data")
	// ErrInvalidAudio indicates sample data that is not whole 16-bit frames.
	ErrInvalidAudio = errors.New("invalid audio data")
)

// Validate checks that pcm is non-empty, whole-sample 16-bit data.
func Validate(pcm []byte) error {
	if len(pcm) == 0 {
		return ErrEmptyAudio
	}
	if len(pcm)%bytesPerSample != 0 {
		return fmt.Errorf("%w: %d bytes is not whole 16-bit samples", ErrInvalidAudio, len(pcm))
	}
	return nil
}

// Duration returns the playback duration of the PCM data.
func Duration(pcm []byte) time.Duration {
	samples := len(pcm) / (bytesPerSample * channelCount)
	return time.Duration(samples) * time.Second / SampleRate
}

// DecodeBase64 decodes a base64 speech payload into raw PCM.
func DecodeBase64(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrEmptyAudio
	}
	pcm, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAudio, err)
	}
	if err := Validate(pcm); err != nil {
		return nil, err
	}
	return pcm, nil
}

// WriteWAV wraps the PCM data in a RIFF/WAVE header and writes it to w,
// so synthesized speech can be saved as a playable file.
func WriteWAV(w io.Writer, pcm []byte) error {
	if err := Validate(pcm); err != nil {
		return err
	}

	var header [44]byte
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+len(pcm)))
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], channelCount)
	binary.LittleEndian.PutUint32(header[24:28], SampleRate)
	binary.LittleEndian.PutUint32(header[28:32], SampleRate*channelCount*bytesPerSample)
	binary.LittleEndian.PutUint16(header[32:34], channelCount*bytesPerSample)
	binary.LittleEndian.PutUint16(header[34:36], bytesPerSample*8)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(len(pcm)))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}
	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}
	return nil
}
