package pageroutes

import (
	"strings"
	"text/tabwriter"
)

// PrintRoutes renders the route table, one "path  view" line per route in
// declaration order.
func PrintRoutes(t *Table) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	for _, r := range t.Routes() {
		_, _ = tw.Write([]byte(r.Path + "\t" + r.String() + "\n"))
	}
	_ = tw.Flush()
	return sb.String()
}
