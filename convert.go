// SPDX-License-Identifier: EPL-2.0

package tapwav

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ik5/tapwav/audio"
	"github.com/ik5/tapwav/formats/tap"
	"github.com/ik5/tapwav/sides"
	"github.com/ik5/tapwav/utils"
)

// Options holds everything that shapes the rendered audio.
type Options struct {
	Format audio.Format

	// Spacing is the silence appended after every tape.
	Spacing time.Duration

	// SideLength bounds the playing time of each side, exclusive.
	SideLength time.Duration

	// Threshold is the half-cycle sample count under which a tape is
	// reported as rendered at too low a sample rate.
	Threshold int
}

// DefaultOptions returns 96 kHz mono 8-bit output with five seconds between
// tapes and thirty minute sides.
func DefaultOptions() Options {
	return Options{
		Format:     audio.DefaultFormat,
		Spacing:    5 * time.Second,
		SideLength: 30 * time.Minute,
		Threshold:  audio.DefaultThreshold,
	}
}

func (o Options) Validate() error {
	if err := o.Format.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	if o.Spacing < 0 {
		return fmt.Errorf("%w: negative spacing %v", ErrInvalidOptions, o.Spacing)
	}

	if o.SideLength <= 0 {
		return fmt.Errorf("%w: side length %v must be positive", ErrInvalidOptions, o.SideLength)
	}

	if o.Threshold < 0 {
		return fmt.Errorf("%w: negative threshold %d", ErrInvalidOptions, o.Threshold)
	}

	return nil
}

// Converter turns tape images into rendered buffers and packs them into
// sides.
type Converter struct {
	Options Options

	// Registry maps file extensions to decoders. NewConverter registers
	// "tap".
	Registry *audio.Registry

	Logger logrus.FieldLogger
}

// NewConverter returns a Converter with the TAP decoder registered and
// logging discarded.
func NewConverter(opts Options) *Converter {
	reg := audio.NewRegistry()
	reg.Register("tap", tap.Decoder{})

	return &Converter{
		Options:  opts,
		Registry: reg,
		Logger:   discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

func (c *Converter) log() logrus.FieldLogger {
	if c.Logger == nil {
		return discardLogger()
	}

	return c.Logger
}

// DecodeFile renders the image at path. The decoder is chosen by the file
// extension and the buffer is labeled with path.
func (c *Converter) DecodeFile(path string) (*audio.Buffer, error) {
	ext := filepath.Ext(path)

	reg := c.Registry
	if reg == nil {
		reg = audio.NewRegistry()
		reg.Register("tap", tap.Decoder{})
	}

	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return c.decode(dec, f, path)
}

// Decode renders a TAP image read from r and labels the result.
func (c *Converter) Decode(r io.Reader, label string) (*audio.Buffer, error) {
	return c.decode(tap.Decoder{}, r, label)
}

func (c *Converter) decode(dec audio.Decoder, r io.Reader, label string) (*audio.Buffer, error) {
	log := c.log().WithField("file", label)

	src, err := dec.Decode(r)
	if err != nil {
		return nil, err
	}

	if t, ok := src.(*tap.Tape); ok {
		log.Debug(t.Header().String())
	}

	synth := audio.NewSynthesizer(c.Options.Format)
	synth.Threshold = c.Options.Threshold
	synth.OnLowSampleCount = func(samples int) {
		log.WithField("samples", samples).
			Warn("number of samples per waveform is too low, raise sample rate")
	}

	buf, err := synth.Synthesize(src, c.Options.Spacing)
	if err != nil {
		return nil, err
	}

	buf.Label(label)
	log.WithField("length", utils.FormatLength(buf.Seconds())).Info("parsed tape")

	return buf, nil
}

// DecodeAll renders every path. A failing file does not stop the others;
// all failures are returned joined, each carrying its file name, and no
// buffers are returned in that case.
func (c *Converter) DecodeAll(paths []string) ([]*audio.Buffer, error) {
	if len(paths) == 0 {
		return nil, ErrNoInputs
	}

	if err := c.Options.Validate(); err != nil {
		return nil, err
	}

	bufs := make([]*audio.Buffer, 0, len(paths))
	var errs []error

	for _, path := range paths {
		buf, err := c.DecodeFile(path)
		if err != nil {
			c.log().WithField("file", path).WithError(err).Error("failed to parse tape")
			errs = append(errs, fmt.Errorf("%s: %w", path, err))

			continue
		}

		bufs = append(bufs, buf)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return bufs, nil
}

// Sides decodes paths, orders the tapes longest first and packs them onto
// sides shorter than Options.SideLength.
func (c *Converter) Sides(paths []string) ([]*audio.Buffer, error) {
	bufs, err := c.DecodeAll(paths)
	if err != nil {
		return nil, err
	}

	return c.Pack(bufs)
}

// Pack orders already rendered tapes longest first and packs them onto
// sides. The tapes are moved onto the sides.
func (c *Converter) Pack(bufs []*audio.Buffer) ([]*audio.Buffer, error) {
	sides.SortByLength(bufs)

	out, err := sides.Pack(bufs, c.Options.SideLength)
	if err != nil {
		return nil, err
	}

	c.log().WithField("sides", len(out)).Debug("packed tapes")

	return out, nil
}

// OutputName returns the file name of side n, counted from 1.
func OutputName(prefix string, n int) string {
	return prefix + strconv.Itoa(n) + ".wav"
}
