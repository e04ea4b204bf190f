package renderer

import (
	"bytes"
	"fmt"

	"github.com/cargoportl/cargoportl"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the overview page: totals and the breakdown of
// shipments by status and transport mode.
func DashboardMarkdown(stats cargoportl.Stats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dashboard Overview")
	doc.PlainText(fmt.Sprintf("Total Shipments: %d", stats.Total))

	doc.H2("Orders by Status")
	doc.Table(md.TableSet{
		Header: []string{"Status", "Count"},
		Rows: [][]string{
			{"Active", fmt.Sprintf("%d", stats.Active)},
			{"Completed", fmt.Sprintf("%d", stats.Completed)},
			{"Delayed", fmt.Sprintf("%d", stats.Pending)},
		},
	})

	doc.H2("Shipments by Mode")
	doc.Table(md.TableSet{
		Header: []string{"Mode", "Active"},
		Rows: [][]string{
			{"Air Shipments", fmt.Sprintf("%d", stats.Air)},
			{"Sea Shipments", fmt.Sprintf("%d", stats.Sea)},
			{"Land Shipments", fmt.Sprintf("%d", stats.Land)},
		},
	})

	return doc.String()
}
