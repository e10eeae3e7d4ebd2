package materialize

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"protoforge/internal/schema"
)

// renderBOMCSV renders line items as RFC 4180 CSV. encoding/csv quotes a
// field whenever it contains a comma, quote, or newline, which is exactly
// the escaping contract for bom.csv.
func renderBOMCSV(items []schema.BOMItem) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"partNumber", "description", "quantity", "unitPrice", "link"})
	for _, it := range items {
		_ = w.Write([]string{
			it.PartNumber,
			it.Description,
			strconv.Itoa(quantityOrDefault(it)),
			it.UnitPrice,
			it.Link,
		})
	}
	w.Flush()
	return buf.Bytes()
}

func renderBOMMarkdown(items []schema.BOMItem) []byte {
	var sb strings.Builder
	sb.WriteString("# Bill of Materials\n\n")
	sb.WriteString("| Part Number | Description | Quantity | Unit Price | Link |\n")
	sb.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, it := range items {
		fmt.Fprintf(&sb, "| %s | %s | %d | %s | %s |\n",
			mdCell(it.PartNumber),
			mdCell(it.Description),
			quantityOrDefault(it),
			mdCell(it.UnitPrice),
			mdCell(it.Link),
		)
	}
	return []byte(sb.String())
}

// quantityOrDefault applies the quantity-defaults-to-1 rule at render time;
// the validated spec keeps the original zero value.
func quantityOrDefault(it schema.BOMItem) int {
	if it.Quantity <= 0 {
		return 1
	}
	return it.Quantity
}

// mdCell escapes a value for use inside a Markdown table row.
func mdCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
