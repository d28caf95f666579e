// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"ggcat2bcalm/internal/version"
)

// UsageCommon installs the Usage() handler on fs.
// extra prints tool-specific sections ahead of the flag blocks.
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s: GGCAT unitigs to BCALM2 format\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s -k K [flags] [unitigs.fa | -]\n", name)

		if extra != nil {
			extra(out)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -k, --kmer-size int         k-mer size used to build the unitigs [*]")
		fmt.Fprintln(out, "  -f, --input file            Unitig FASTA (or positional), '-' for STDIN [*]")
		fmt.Fprintf(out, "      --max-line-bytes int    Longest accepted input line [%s]\n", def("max-line-bytes"))
		fmt.Fprintf(out, "      --buffer-bytes int      Initial read buffer [%s]\n", def("buffer-bytes"))

		fmt.Fprintln(out, "\nGraph:")
		fmt.Fprintf(out, "      --pairing string        Pairs compared per overlap bucket: all | anchor [%s]\n", def("pairing"))
		fmt.Fprintf(out, "      --allow-duplicate-kmers Accept unitigs sharing a leftmost k-mer [%s]\n", def("allow-duplicate-kmers"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output file           Output file, '-' for STDOUT [%s]\n", def("output"))
		fmt.Fprintf(out, "      --format string         bcalm | gfa | dot | jsonl | json [%s]\n", def("format"))
		fmt.Fprintf(out, "      --with-seq              Include sequences in json/jsonl records [%s]\n", def("with-seq"))
		fmt.Fprintln(out, "      --checksum              Print the xxhash64 of the output on STDERR")
		fmt.Fprintln(out, "      --metrics-file file     Write Prometheus text metrics after the run")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --config file           YAML config; explicit flags win")
		fmt.Fprintln(out, "  -q, --quiet                 Log errors only")
		fmt.Fprintln(out, "      --debug                 Log debug records")
		fmt.Fprintln(out, "      --examples              Print usage examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
