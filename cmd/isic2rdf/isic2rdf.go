// Command isic2rdf turns an ISIC classification into an rdf graph of centrally registered identifiers
package main

//spellchecker:words context flag github ieograph internal convert stats pkglib perf
import (
	"context"
	"flag"
	"os"

	"github.com/FAU-CDI/ieograph"
	"github.com/FAU-CDI/ieograph/internal/cli"
	"github.com/FAU-CDI/ieograph/internal/convert"
	"github.com/FAU-CDI/ieograph/internal/stats"
	"github.com/tkw1536/pkglib/perf"
)

// cspell:words isic

const usage = "isic2rdf [-help] [...flags] /path/to/isic.csv [/path/to/output]"

func main() {
	st := stats.NewStats(os.Stderr)
	defer flags.Debug(st)()

	input, output, err := ieograph.ParseArgs(nArgs...)
	if err != nil {
		cli.Usage(st, usage, err)
	}

	ctx := context.Background()

	opts, err := flags.Options(ctx, st)
	if err != nil {
		st.LogFatal("prepare", err)
	}
	defer opts.Close(ctx)
	opts.Output = output

	result, err := convert.Classification(ctx, input, revision, opts)
	if err != nil {
		st.LogFatal("convert classification", err)
	}

	st.Log("finished", "output", result.Output, "graph", result.Graph, "stages", result.Stages, "took", st.Diff(), "now", perf.Now())
}

var nArgs []string
var flags cli.Flags
var revision int

func init() {
	flag.IntVar(&revision, "rev", revision, "Revision of the ISIC classification, asked for when not given")
	nArgs = flags.Parse()
}
