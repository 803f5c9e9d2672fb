// Package render prints admin API responses as tables, JSON or YAML.
//
// The client hands back opaque JSON. Tables pick their columns out of each
// record by gjson path, so a field that the backend omits prints as "-".
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Format selects how responses are printed
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

const missing = "-"

// ParseFormat validates an --output value
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format %q (expected table, json or yaml)", s)
	}
}

// Column is one table column read from each record at Path
type Column struct {
	Header string
	Path   string
}

// Col is shorthand for a Column
func Col(header, path string) Column {
	return Column{Header: header, Path: path}
}

// Renderer writes responses to out in one format
type Renderer struct {
	out    io.Writer
	format Format
}

// New creates a renderer
func New(out io.Writer, format Format) *Renderer {
	if format == "" {
		format = FormatTable
	}
	return &Renderer{out: out, format: format}
}

// Format returns the renderer's output format
func (r *Renderer) Format() Format {
	return r.format
}

// List prints a collection. Paginated bodies are unwrapped from "content";
// a bare array is used as is.
func (r *Renderer) List(data json.RawMessage, columns []Column, empty string) error {
	if r.format != FormatTable {
		return r.encode(data)
	}

	items, page := Items(data)
	if len(items) == 0 {
		fmt.Fprintln(r.out, empty)
		return nil
	}

	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	headers := make([]string, len(columns))
	rules := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Header
		rules[i] = strings.Repeat("─", utf8.RuneCountInString(c.Header))
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	fmt.Fprintln(w, strings.Join(rules, "\t"))

	for _, item := range items {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = Cell(item.Get(c.Path))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if page.Get("totalElements").Exists() {
		fmt.Fprintf(r.out, "\nPage %d of %d (%d total)\n",
			page.Get("number").Int()+1,
			max(page.Get("totalPages").Int(), 1),
			page.Get("totalElements").Int(),
		)
	}
	return nil
}

// Record prints a single object as aligned "field: value" lines
func (r *Renderer) Record(data json.RawMessage, fields []Column) error {
	if r.format != FormatTable {
		return r.encode(data)
	}

	record := gjson.ParseBytes(data)
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	for _, f := range fields {
		fmt.Fprintf(w, "%s:\t%s\n", f.Header, Cell(record.Get(f.Path)))
	}
	return w.Flush()
}

// Raw prints a body whose shape is not known ahead of time. Tables fall
// back to indented JSON.
func (r *Renderer) Raw(data json.RawMessage) error {
	if r.format == FormatTable {
		return r.writeJSON(data)
	}
	return r.encode(data)
}

// Result reports a completed mutation. Tables print message; json and yaml
// print the response body, or nothing when the backend sent none.
func (r *Renderer) Result(data json.RawMessage, message string) error {
	if r.format == FormatTable {
		fmt.Fprintln(r.out, message)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	return r.encode(data)
}

// Section prints a heading before the next block in table mode
func (r *Renderer) Section(title string) {
	if r.format == FormatTable {
		fmt.Fprintf(r.out, "\n%s\n", title)
	}
}

func (r *Renderer) encode(data json.RawMessage) error {
	if r.format == FormatYAML {
		return r.writeYAML(data)
	}
	return r.writeJSON(data)
}

func (r *Renderer) writeJSON(data json.RawMessage) error {
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	buf.WriteByte('\n')
	_, err := r.out.Write(buf.Bytes())
	return err
}

func (r *Renderer) writeYAML(data json.RawMessage) error {
	if len(data) == 0 {
		data = json.RawMessage("null")
	}

	// JSON is valid YAML; decoding into a node keeps the backend's key order
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	blockStyle(&node)

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	return enc.Close()
}

// blockStyle drops the flow and quoting styles the JSON source implies
func blockStyle(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style = 0
	}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" {
		n.Style = 0
	}
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// Items returns the records of a collection body and, for paginated bodies,
// the page envelope.
func Items(data json.RawMessage) ([]gjson.Result, gjson.Result) {
	root := gjson.ParseBytes(data)
	if content := root.Get("content"); content.IsArray() {
		return content.Array(), root
	}
	if root.IsArray() {
		return root.Array(), gjson.Result{}
	}
	return nil, gjson.Result{}
}

// Cell formats a value for a table cell
func Cell(v gjson.Result) string {
	if !v.Exists() || v.Type == gjson.Null {
		return missing
	}
	if v.IsArray() {
		parts := make([]string, 0)
		for _, e := range v.Array() {
			parts = append(parts, Cell(e))
		}
		if len(parts) == 0 {
			return missing
		}
		return strings.Join(parts, ",")
	}
	s := v.String()
	if s == "" {
		return missing
	}
	return s
}
