package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteTable writes results as an aligned plain-text table.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "op\tsize (bytes)\titerations\tbaseline\tmemvec\tbaseline fn\tgain\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.6fs\t%.6fs\t%s\t%.2f%%\t\n",
			r.Op, r.Size, r.Iterations,
			r.Baseline.Seconds(), r.Vector.Seconds(),
			r.Op.Baseline(), r.Gain(),
		)
	}
	return tw.Flush()
}
