// Package renderer turns stashmate reports into markdown.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/stashmate"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the full dashboard report: KPI table, revenue
// series summary, and the matching items.
func DashboardMarkdown(r *stashmate.DashboardReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dashboard %q", r.Collection))
	doc.PlainText(title(r.Range.String()))

	doc.H2("Key Figures")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Made"),
			md.Bold(r.Metrics.TotalMade.String()),
		},
		Rows: [][]string{
			{"Items", fmt.Sprintf("%d", r.Metrics.TotalCount)},
			{"Inventory Value", r.Metrics.InventoryValue.String()},
			{"Potential Profit", r.Metrics.PotentialProfit.String()},
		},
	})

	if len(r.Series) > 0 {
		doc.H2("Daily Revenue")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Date", "Revenue"},
		}
		for _, p := range r.Series {
			if p.Value.IsZero() {
				continue
			}
			table.Rows = append(table.Rows, []string{
				p.Date.String(),
				p.Value.String(),
			})
		}
		doc.Table(table)
	}

	doc.H2(fmt.Sprintf("Items (%s)", r.ResultCount()))
	itemsTable(doc, r.Items)

	return doc.String()
}

// ItemsMarkdown renders a plain item listing, without the dashboard around it.
func ItemsMarkdown(title string, items []stashmate.Item) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	itemsTable(doc, items)
	return doc.String()
}

func itemsTable(doc *md.Markdown, items []stashmate.Item) {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{
			"Name",
			"Category",
			"Qty",
			"Cost",
			"Price",
			"Profit",
			"Acquired",
			"Status",
		},
	}
	for _, it := range items {
		table.Rows = append(table.Rows, []string{
			it.Name,
			it.Category,
			fmt.Sprintf("%d", it.Quantity()),
			it.Cost.String(),
			it.Price.String(),
			it.Profit().SignedString(),
			it.Acquired.String(),
			it.Status.String(),
		})
	}
	doc.Table(table)
}
