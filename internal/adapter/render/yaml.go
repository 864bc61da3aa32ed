package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"clockify-report/internal/report"
)

// YAML implements ports.Renderer by emitting one YAML document per table.
// Rows are mappings keyed by column name, in column order.
type YAML struct {
	enc *yaml.Encoder
}

func NewYAML(w io.Writer) *YAML {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAML{enc: enc}
}

func (y *YAML) Display(tbl report.Table) error {
	rows := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range tbl.Rows {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for i, col := range tbl.Columns {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			value := scalar(v)
			if v == "" {
				value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
			}
			m.Content = append(m.Content, scalar(col), value)
		}
		rows.Content = append(rows.Content, m)
	}
	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			scalar("title"), scalar(tbl.Title),
			scalar("rows"), rows,
		},
	}
	return y.enc.Encode(doc)
}

// Close flushes the encoder.
func (y *YAML) Close() error { return y.enc.Close() }

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
