// Command spold2rdf turns an EcoSpold2 master data file into an rdf graph of centrally registered identifiers
package main

//spellchecker:words context github ieograph internal convert stats pkglib perf
import (
	"context"
	"os"

	"github.com/FAU-CDI/ieograph"
	"github.com/FAU-CDI/ieograph/internal/cli"
	"github.com/FAU-CDI/ieograph/internal/convert"
	"github.com/FAU-CDI/ieograph/internal/stats"
	"github.com/tkw1536/pkglib/perf"
)

// cspell:words spold

const usage = "spold2rdf [-help] [...flags] /path/to/MasterData.xml [/path/to/output]"

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

	result, err := convert.MasterData(ctx, input, opts)
	if err != nil {
		st.LogFatal("convert master data", err)
	}

	for product, count := range result.Products {
		st.Log("classified exchanges", "type", product, "count", count)
	}
	st.Log("finished", "output", result.Output, "graph", result.Graph, "stages", result.Stages, "took", st.Diff(), "now", perf.Now())
}

var nArgs []string
var flags cli.Flags

func init() {
	nArgs = flags.Parse()
}
