// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ik5/tapwav/internal/audiotest"
)

// one frame per microsecond keeps the expected sample counts readable
var oneMHz = Format{SampleRate: 1_000_000, Channels: 1, BitDepth: 8}

func TestSynthesizer_SquareWave(t *testing.T) {
	t.Parallel()

	synth := NewSynthesizer(oneMHz)
	synth.Threshold = 0

	buf, err := synth.Synthesize(audiotest.NewMockPeriodSource(10, 4, 1), 0)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	want := []byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0, 0, // period 10
		0xff, 0xff, 0, 0, // period 4
		// period 1 rounds down to nothing
	}
	if !reflect.DeepEqual(buf.Bytes(), want) {
		t.Errorf("Bytes() = %v, want %v", buf.Bytes(), want)
	}
}

func TestSynthesizer_Spacing(t *testing.T) {
	t.Parallel()

	synth := NewSynthesizer(oneMHz)

	buf, err := synth.Synthesize(audiotest.NewConstantSource(100, 3), 2*time.Millisecond)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if buf.Len() != 3*100+2000 {
		t.Fatalf("Len() = %d, want %d", buf.Len(), 3*100+2000)
	}

	for i, v := range buf.Bytes()[300:] {
		if v != 0 {
			t.Fatalf("spacing sample %d = %d, want 0", i, v)
		}
	}
}

func TestSynthesizer_EmptySource(t *testing.T) {
	t.Parallel()

	buf, err := NewSynthesizer(oneMHz).Synthesize(audiotest.NewMockPeriodSource(), time.Millisecond)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if buf.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000 frames of spacing only", buf.Len())
	}
}

func TestSynthesizer_LowSampleWarningOnce(t *testing.T) {
	t.Parallel()

	var calls []int

	synth := NewSynthesizer(oneMHz)
	synth.OnLowSampleCount = func(n int) { calls = append(calls, n) }

	// half-cycles of 50, 5, 3 and 2 frames; only the first short one is reported
	_, err := synth.Synthesize(audiotest.NewMockPeriodSource(100, 10, 6, 4), 0)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if !reflect.DeepEqual(calls, []int{5}) {
		t.Errorf("OnLowSampleCount calls = %v, want [5]", calls)
	}
}

func TestSynthesizer_NoWarningAboveThreshold(t *testing.T) {
	t.Parallel()

	warned := false

	synth := NewSynthesizer(oneMHz)
	synth.OnLowSampleCount = func(int) { warned = true }

	// 24 / 2 = 12 frames per half-cycle sits exactly on the threshold
	if _, err := synth.Synthesize(audiotest.NewConstantSource(24, 5), 0); err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if warned {
		t.Error("OnLowSampleCount called for half-cycles at the threshold")
	}
}

func TestSynthesizer_WarningPerSource(t *testing.T) {
	t.Parallel()

	count := 0

	synth := NewSynthesizer(oneMHz)
	synth.OnLowSampleCount = func(int) { count++ }

	for range 3 {
		if _, err := synth.Synthesize(audiotest.NewConstantSource(2, 4), 0); err != nil {
			t.Fatalf("Synthesize() error = %v", err)
		}
	}

	if count != 3 {
		t.Errorf("OnLowSampleCount called %d times over 3 sources, want 3", count)
	}
}

func TestSynthesizer_ZeroSampleHalfCyclesKept(t *testing.T) {
	t.Parallel()

	// 8kHz is 125us per frame, so a 200us period gives 0 frames per half
	synth := NewSynthesizer(Format{SampleRate: 8000, Channels: 1, BitDepth: 8})

	n := -1
	synth.OnLowSampleCount = func(got int) { n = got }

	buf, err := synth.Synthesize(audiotest.NewMockPeriodSource(200, 1000), 0)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if n != 0 {
		t.Errorf("OnLowSampleCount got %d, want 0", n)
	}

	// 1000us -> 500us half -> 4 frames each
	if buf.Len() != 8 {
		t.Errorf("Len() = %d, want 8", buf.Len())
	}
}

func TestSynthesizer_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := audiotest.NewConstantSource(100, 5)
	src.FailAt = 2
	src.Err = boom

	buf, err := NewSynthesizer(oneMHz).Synthesize(src, 0)
	if !errors.Is(err, boom) {
		t.Fatalf("Synthesize() error = %v, want %v", err, boom)
	}

	if buf != nil {
		t.Error("Synthesize() returned a partial buffer on error")
	}
}

func TestSynthesizer_InvalidFormat(t *testing.T) {
	t.Parallel()

	synth := NewSynthesizer(Format{SampleRate: 0, Channels: 1, BitDepth: 8})

	_, err := synth.Synthesize(audiotest.NewConstantSource(100, 1), 0)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Synthesize() error = %v, want ErrInvalidFormat", err)
	}
}

func BenchmarkSynthesizer(b *testing.B) {
	src := audiotest.NewConstantSource(394, 10000)
	synth := NewSynthesizer(DefaultFormat)

	b.ReportAllocs()

	for b.Loop() {
		src.Reset()
		if _, err := synth.Synthesize(src, 0); err != nil {
			b.Fatal(err)
		}
	}
}
