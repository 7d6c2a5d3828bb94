// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"
	"time"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/tapwav/audio"
)

// Info describes a WAV file as read back by an independent decoder.
type Info struct {
	Format audio.Format
	Frames int
	PCM    *goaudio.IntBuffer
}

func (i Info) Duration() time.Duration {
	if i.Format.SampleRate == 0 {
		return 0
	}

	return time.Duration(int64(i.Frames) * int64(time.Second) / int64(i.Format.SampleRate))
}

// Inspect decodes a PCM WAV file with go-audio/wav.
func Inspect(r io.ReadSeeker) (Info, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return Info{}, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return Info{}, ErrNotWavFile
	}

	if dec.WavAudioFormat != pcmFormat {
		return Info{}, fmt.Errorf("%w: format tag %d", ErrNotPCM, dec.WavAudioFormat)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return Info{}, fmt.Errorf("reading PCM data: %w", err)
	}

	return Info{
		Format: audio.Format{
			SampleRate: int(dec.SampleRate),
			Channels:   int(dec.NumChans),
			BitDepth:   int(dec.BitDepth),
		},
		Frames: pcm.NumFrames(),
		PCM:    pcm,
	}, nil
}

// Verify re-reads the WAV file at path and checks that its format, frame
// count and every sample match buf.
func Verify(path string, buf *audio.Buffer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	info, err := Inspect(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if info.Format != buf.Format() {
		return fmt.Errorf("%w: %s has format %+v, want %+v", ErrVerifyMismatch, path, info.Format, buf.Format())
	}

	if info.Frames != buf.Len() {
		return fmt.Errorf("%w: %s has %d frames, want %d", ErrVerifyMismatch, path, info.Frames, buf.Len())
	}

	want := buf.IntBuffer().Data
	for i, v := range info.PCM.Data {
		if i >= len(want) || v != want[i] {
			return fmt.Errorf("%w: %s differs at sample %d", ErrVerifyMismatch, path, i)
		}
	}

	if len(info.PCM.Data) != len(want) {
		return fmt.Errorf("%w: %s has %d samples, want %d", ErrVerifyMismatch, path, len(info.PCM.Data), len(want))
	}

	return nil
}
