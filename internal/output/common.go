package output

// Output formats understood by the writers registry.
const (
	FormatBCALM = "bcalm"
	FormatGFA   = "gfa"
	FormatDOT   = "dot"
	FormatJSONL = "jsonl"
	FormatJSON  = "json"
)

// Formats lists every format in the order shown by --help.
var Formats = []string{FormatBCALM, FormatGFA, FormatDOT, FormatJSONL, FormatJSON}

// BCALMPlaceholders are the fixed LN/KC/km fields of a BCALM header. They
// are not computed from the unitig.
const BCALMPlaceholders = "LN:i:0 KC:i:0 km:f:0.0"

// GFAHeader is the first line of every GFA output.
const GFAHeader = "H\tVN:Z:1.0"
