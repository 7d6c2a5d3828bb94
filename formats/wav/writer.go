// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/ik5/tapwav/audio"
)

// HeaderSize is the length of the canonical RIFF/WAVE header written before
// the sample data.
const HeaderSize = 44

const (
	pcmFormat    = 1
	fmtChunkSize = 16
	// riff size = "WAVE" + fmt chunk header and body + data chunk header
	riffOverhead = 4 + (8 + fmtChunkSize) + 8
)

// EncodeHeader returns the 44 header bytes for dataSize bytes of PCM data
// in the given format.
func EncodeHeader(format audio.Format, dataSize uint32) []byte {
	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffOverhead+dataSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(header[20:22], pcmFormat)
	binary.LittleEndian.PutUint16(header[22:24], uint16(format.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(format.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(format.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(format.BlockAlign()))
	binary.LittleEndian.PutUint16(header[34:36], uint16(format.BitDepth))

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	return header
}

// Write serializes buf as a PCM WAV file. The size fields are computed from
// the buffer's contents at the time of the call.
func Write(w io.Writer, buf *audio.Buffer) error {
	format := buf.Format()
	if err := format.Validate(); err != nil {
		return fmt.Errorf("%w", err)
	}

	data := buf.Bytes()
	if uint64(len(data)) > math.MaxUint32-riffOverhead {
		return fmt.Errorf("%w: %d bytes of samples", ErrTooLarge, len(data))
	}

	if _, err := w.Write(EncodeHeader(format, uint32(len(data)))); err != nil {
		return fmt.Errorf("%w", err)
	}

	// write in chunks so large sides do not go out in a single syscall
	const chunkSize = 64 * 1024
	for i := 0; i < len(data); i += chunkSize {
		end := min(i+chunkSize, len(data))

		if _, err := w.Write(data[i:end]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// WriteFile writes buf to path. The file is assembled under a temporary name
// in the same directory and renamed into place, so a failed write never
// leaves a partial WAV behind.
func WriteFile(path string, buf *audio.Buffer) (rerr error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	defer func() {
		if rerr != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := Write(bw, buf); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming into %s: %w", path, err)
	}

	return nil
}
