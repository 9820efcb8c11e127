package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/stashmate"
	md "github.com/nao1215/markdown"
)

// RevenueMarkdown renders a periodic revenue and profit breakdown, one row
// per bucket that saw a sale.
func RevenueMarkdown(collection string, p stashmate.Period, series []stashmate.RevenuePoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Revenue %q", title(p.String()), collection))

	if len(series) == 0 {
		doc.PlainText("No sold revenue recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Period", "Revenue", "Profit"},
	}
	var revenue, profit stashmate.Money
	for _, pt := range series {
		table.Rows = append(table.Rows, []string{
			pt.Date.String(),
			pt.Revenue.String(),
			pt.Profit.SignedString(),
		})
		revenue = revenue.Add(pt.Revenue)
		profit = profit.Add(pt.Profit)
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(revenue.String()),
		md.Bold(profit.SignedString()),
	})
	doc.Table(table)

	return doc.String()
}

// title upper-cases the first letter of a display label.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
