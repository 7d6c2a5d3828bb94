// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ik5/tapwav/audio"
)

func TestInspect_RoundTrip8Bit(t *testing.T) {
	t.Parallel()

	b := bufferOf(mono8, 60, 40, "a")

	info, err := Inspect(bytes.NewReader(writeBytes(t, b)))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	if info.Format != mono8 {
		t.Errorf("Format = %+v, want %+v", info.Format, mono8)
	}

	if info.Frames != 100 {
		t.Errorf("Frames = %d, want 100", info.Frames)
	}
}

func TestInspect_RoundTrip16Bit(t *testing.T) {
	t.Parallel()

	format := audio.Format{SampleRate: 8000, Channels: 2, BitDepth: 16}
	b := bufferOf(format, 4, 4, "s")

	info, err := Inspect(bytes.NewReader(writeBytes(t, b)))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	if info.Format != format {
		t.Errorf("Format = %+v, want %+v", info.Format, format)
	}

	if info.Frames != 8 {
		t.Errorf("Frames = %d, want 8", info.Frames)
	}

	if !reflect.DeepEqual(info.PCM.Data, b.IntBuffer().Data) {
		t.Errorf("PCM data = %v, want %v", info.PCM.Data, b.IntBuffer().Data)
	}

	if info.Duration() != time.Millisecond {
		t.Errorf("Duration() = %v, want 1ms", info.Duration())
	}
}

func TestInspect_NotWAV(t *testing.T) {
	t.Parallel()

	_, err := Inspect(bytes.NewReader([]byte("NOT A WAV FILE DATA AT ALL, NOT EVEN CLOSE")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Inspect() error = %v, want ErrNotWavFile", err)
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "side1.wav")
	b := bufferOf(mono8, 30, 30, "a")

	if err := WriteFile(path, b); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := Verify(path, b); err != nil {
		t.Errorf("Verify() error = %v", err)
	}

	longer := bufferOf(mono8, 31, 30, "a")
	if err := Verify(path, longer); !errors.Is(err, ErrVerifyMismatch) {
		t.Errorf("Verify() with other length error = %v, want ErrVerifyMismatch", err)
	}

	other := bufferOf(audio.Format{SampleRate: 22050, Channels: 1, BitDepth: 8}, 30, 30, "a")
	if err := Verify(path, other); !errors.Is(err, ErrVerifyMismatch) {
		t.Errorf("Verify() with other format error = %v, want ErrVerifyMismatch", err)
	}

	if err := Verify(filepath.Join(dir, "missing.wav"), b); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Verify() of missing file error = %v, want not exist", err)
	}
}

func TestVerify_Samples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format audio.Format
	}{
		{"8 bit mono", mono8},
		{"16 bit stereo", audio.Format{SampleRate: 8000, Channels: 2, BitDepth: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "side1.wav")
			b := bufferOf(tt.format, 20, 20, "a")

			if err := WriteFile(path, b); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			if err := Verify(path, b); err != nil {
				t.Fatalf("Verify() of intact file error = %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}

			// flip the first sample of the low half-cycle to the high level
			low := HeaderSize + 20*tt.format.FrameSize()
			copy(data[low:], b.Bytes()[:tt.format.BytesPerSample()])

			if err := os.WriteFile(path, data, 0o644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			err = Verify(path, b)
			if !errors.Is(err, ErrVerifyMismatch) {
				t.Fatalf("Verify() of corrupted file error = %v, want ErrVerifyMismatch", err)
			}

			if !strings.Contains(err.Error(), fmt.Sprintf("sample %d", 20*tt.format.Channels)) {
				t.Errorf("Verify() error = %v, want it to name sample %d", err, 20*tt.format.Channels)
			}
		})
	}
}
