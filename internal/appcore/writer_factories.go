package appcore

import (
	"io"

	"ggcat2bcalm/core/graph"
	"ggcat2bcalm/internal/writers"
)

// WriterFactory starts the goroutine that serializes unitigs.
type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- graph.Unitig, <-chan error)
}

type UnitigWriterFactory struct {
	Format  string
	K       int
	WithSeq bool
}

func NewUnitigWriterFactory(format string, k int, withSeq bool) UnitigWriterFactory {
	return UnitigWriterFactory{Format: format, K: k, WithSeq: withSeq}
}

func (w UnitigWriterFactory) Start(out io.Writer, bufSize int) (chan<- graph.Unitig, <-chan error) {
	return writers.StartUnitigWriter(out, w.Format, writers.Options{K: w.K, WithSeq: w.WithSeq}, bufSize)
}
