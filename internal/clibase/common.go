// internal/clibase/common.go
package clibase

import (
	"flag"

	"ggcat2bcalm/internal/config"
)

// Misc holds flags that steer the CLI itself rather than the conversion.
type Misc struct {
	ConfigFile string
	Version    bool
	Examples   bool
	Help       bool
}

// Register wires every flag onto fs, bound to c (already holding defaults)
// and m. Short and legacy spellings are aliases of the long names.
func Register(fs *flag.FlagSet, c *config.Config, m *Misc) {
	// Input
	fs.IntVar(&c.K, "kmer-size", c.K, "k-mer size; unitigs overlap by k-1 [*]")
	fs.IntVar(&c.K, "k", c.K, "alias of --kmer-size")
	fs.IntVar(&c.K, "kmersize", c.K, "alias of --kmer-size")
	fs.StringVar(&c.Input, "input", c.Input, "unitig FASTA file or '-' for STDIN [*]")
	fs.StringVar(&c.Input, "f", c.Input, "alias of --input")
	fs.IntVar(&c.MaxLineBytes, "max-line-bytes", c.MaxLineBytes, "longest accepted input line in bytes")
	fs.IntVar(&c.BufferBytes, "buffer-bytes", c.BufferBytes, "initial read buffer in bytes")

	// Graph
	fs.StringVar(&c.Pairing, "pairing", c.Pairing, "pairs compared per overlap bucket: all | anchor")
	fs.BoolVar(&c.AllowDuplicateKmers, "allow-duplicate-kmers", c.AllowDuplicateKmers, "accept unitigs sharing a leftmost k-mer")

	// Output
	fs.StringVar(&c.Output, "output", c.Output, "output file or '-' for STDOUT")
	fs.StringVar(&c.Output, "o", c.Output, "alias of --output")
	fs.StringVar(&c.Format, "format", c.Format, "output format: bcalm | gfa | dot | jsonl | json")
	fs.BoolVar(&c.WithSeq, "with-seq", c.WithSeq, "include sequences in json/jsonl output")
	fs.BoolVar(&c.Checksum, "checksum", c.Checksum, "print the xxhash64 of the output on STDERR")
	fs.StringVar(&c.MetricsFile, "metrics-file", c.MetricsFile, "write Prometheus text metrics to this file")

	// Misc
	fs.StringVar(&m.ConfigFile, "config", "", "YAML config file; flags override its values")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "log errors only")
	fs.BoolVar(&c.Quiet, "q", c.Quiet, "alias of --quiet")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log debug records")
	fs.BoolVar(&m.Examples, "examples", false, "print usage examples and exit")
	fs.BoolVar(&m.Version, "version", false, "print version and exit")
	fs.BoolVar(&m.Version, "v", false, "alias of --version")
	fs.BoolVar(&m.Help, "help", false, "show this help and exit")
	fs.BoolVar(&m.Help, "h", false, "alias of --help")
}
