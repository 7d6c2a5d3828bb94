// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"strings"
	"sync"
)

// PeriodSource is a sequential, exhaustible stream of pulse periods.
type PeriodSource interface {
	// HasMorePeriods reports whether NextPeriod may be called again.
	HasMorePeriods() bool
	// NextPeriod returns the next full pulse period in microseconds.
	// Calling it after HasMorePeriods returned false is an error.
	NextPeriod() (uint32, error)
}

// Decoder constructs a PeriodSource from an input reader.
type Decoder interface {
	Decode(r io.Reader) (PeriodSource, error)
}

// Registry for decoders by format key (the file extension without the dot,
// e.g. "tap"). Keys are case-insensitive.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeFormat(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[normalizeFormat(format)]
	return d, ok
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}
