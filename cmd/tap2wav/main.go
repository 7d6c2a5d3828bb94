// SPDX-License-Identifier: EPL-2.0

// Command tap2wav renders Commodore TAP images as square-wave WAV files,
// packing the tapes onto cassette sides of bounded length.
package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ik5/tapwav"
	"github.com/ik5/tapwav/audio"
	"github.com/ik5/tapwav/formats/wav"
	"github.com/ik5/tapwav/utils"
)

type flags struct {
	output     string
	sampleRate int
	bits       int
	spacing    time.Duration
	minutes    int
	threshold  int
	verify     bool
	verbose    bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	defaults := tapwav.DefaultOptions()
	var f flags

	cmd := &cobra.Command{
		Use:   "tap2wav [flags] FILE...",
		Short: "Convert Commodore TAP images to WAV cassette sides",
		Long: `tap2wav decodes each TAP image into pulses, renders them as a square wave
followed by a gap of silence and packs the tapes, longest first, onto sides
that each play for less than the side length. Side N is written to
<output>N.wav.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(stderr, f.verbose)

			err := run(cmd.OutOrStdout(), log, f, args)
			if err != nil {
				log.WithError(err).Error("conversion failed")
			}

			return err
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.StringVarP(&f.output, "output", "o", "side", "output file prefix")
	fs.IntVarP(&f.sampleRate, "sample-rate", "r", defaults.Format.SampleRate, "output sample rate in Hz")
	fs.IntVarP(&f.bits, "bits", "b", defaults.Format.BitDepth, "bits per sample (8 or 16)")
	fs.DurationVarP(&f.spacing, "spacing", "s", defaults.Spacing, "silence after each tape")
	fs.IntVarP(&f.minutes, "minutes", "m", int(defaults.SideLength/time.Minute), "length of one cassette side in minutes")
	fs.IntVar(&f.threshold, "threshold", defaults.Threshold, "warn when a half-cycle has fewer samples than this")
	fs.BoolVar(&f.verify, "verify", false, "read every written side back and check it")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log tape headers and packing details")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

// maxMinutes is the longest side a time.Duration can express.
const maxMinutes = int(math.MaxInt64 / int64(time.Minute))

func (f flags) options() (tapwav.Options, error) {
	if f.minutes > maxMinutes {
		return tapwav.Options{}, fmt.Errorf("%w: side length of %d minutes is above %d", tapwav.ErrInvalidOptions, f.minutes, maxMinutes)
	}

	return tapwav.Options{
		Format: audio.Format{
			SampleRate: f.sampleRate,
			Channels:   1,
			BitDepth:   f.bits,
		},
		Spacing:    f.spacing,
		SideLength: time.Duration(f.minutes) * time.Minute,
		Threshold:  f.threshold,
	}, nil
}

func run(out io.Writer, log logrus.FieldLogger, f flags, paths []string) error {
	opts, err := f.options()
	if err != nil {
		return err
	}

	if err := opts.Validate(); err != nil {
		return err
	}

	conv := tapwav.NewConverter(opts)
	conv.Logger = log

	tapes, err := conv.DecodeAll(paths)
	if err != nil {
		return err
	}

	for _, tape := range tapes {
		fmt.Fprintf(out, "Parsed '%s'\n\tlength: %s\n", tape.Index()[0].Source, utils.FormatLength(tape.Seconds()))
	}

	sides, err := conv.Pack(tapes)
	if err != nil {
		return err
	}

	for i, side := range sides {
		name := tapwav.OutputName(f.output, i+1)

		fmt.Fprintf(out, "Writing file '%s' (length: %s)...\n", name, utils.FormatLength(side.Seconds()))

		if err := wav.WriteFile(name, side); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}

		if f.verify {
			if err := wav.Verify(name, side); err != nil {
				return fmt.Errorf("verifying %s: %w", name, err)
			}
			log.WithField("file", name).Debug("verified")
		}

		report(out, side)
	}

	return nil
}

func report(out io.Writer, side *audio.Buffer) {
	rate := side.Format().SampleRate

	fmt.Fprintln(out, "\tContents:")
	for _, e := range side.Index() {
		fmt.Fprintf(out, "\t\toffset: %s, length: %s, file: %s\n",
			utils.FormatLength(utils.SamplesToSeconds(e.Offset, rate)),
			utils.FormatLength(utils.SamplesToSeconds(e.Length, rate)),
			e.Source)
	}
}
