// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ik5/tapwav/audio"
	"github.com/ik5/tapwav/formats/wav"
)

// Example_encoding demonstrates writing a buffer as a WAV file.
func Example_encoding() {
	buf := audio.NewBuffer(audio.Format{SampleRate: 8000, Channels: 1, BitDepth: 8})
	buf.AddLevel(audio.High, 500)
	buf.AddLevel(audio.Low, 500)

	// Write to memory (in real code, use wav.WriteFile)
	output := new(bytes.Buffer)
	if err := wav.Write(output, buf); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	data := output.Bytes()
	fmt.Printf("File size: %d bytes\n", len(data))
	fmt.Printf("Data size: %d bytes\n", binary.LittleEndian.Uint32(data[40:44]))
	// Output:
	// File size: 1044 bytes
	// Data size: 1000 bytes
}

// Example_inspect reads a written file back with an independent decoder.
func Example_inspect() {
	buf := audio.NewBuffer(audio.Format{SampleRate: 22050, Channels: 1, BitDepth: 8})
	buf.AddLevel(audio.High, 11025)
	buf.AddLevel(audio.Low, 11025)

	output := new(bytes.Buffer)
	_ = wav.Write(output, buf)

	info, err := wav.Inspect(bytes.NewReader(output.Bytes()))
	if err != nil {
		fmt.Printf("Inspect error: %v\n", err)
		return
	}

	fmt.Printf("%d Hz, %d channel, %d bits\n", info.Format.SampleRate, info.Format.Channels, info.Format.BitDepth)
	fmt.Printf("Duration: %v\n", info.Duration())
	// Output:
	// 22050 Hz, 1 channel, 8 bits
	// Duration: 1s
}
