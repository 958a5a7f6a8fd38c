package importer

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/zandoc/docengine/internal/doctree"
)

// TextImporter converts plain text: blank-line separated runs become
// paragraphs, single newlines inside a run are kept as literal breaks.
type TextImporter struct{}

func (p *TextImporter) Import(r io.Reader, filename string) ([]doctree.Node, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var tree []doctree.Node
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		tree = append(tree, doctree.NewBlock(doctree.Paragraph, doctree.NewText(current.String(), nil)))
		current.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(tree) == 0 {
		tree = doctree.NewEmptyTree()
	}
	return tree, nil
}

// ImportPlainText wraps a raw string as a document tree. Used for
// legacy stored content that predates the structured format.
func ImportPlainText(s string) []doctree.Node {
	tree, err := (&TextImporter{}).Import(strings.NewReader(s), "")
	if err != nil {
		return doctree.NewEmptyTree()
	}
	return tree
}

// CSVImporter converts CSV input into a single table block. The first
// record becomes the header row.
type CSVImporter struct{}

func (p *CSVImporter) Import(r io.Reader, filename string) ([]doctree.Node, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return doctree.NewEmptyTree(), nil
	}

	makeRow := func(record []string) doctree.Node {
		cells := make([]doctree.Node, 0, len(record))
		for _, field := range record {
			cells = append(cells, doctree.NewBlock(doctree.TableCell, doctree.NewText(field, nil)))
		}
		return &doctree.Block{Kind: doctree.TableRow, Children: cells}
	}

	children := []doctree.Node{
		&doctree.Block{Kind: doctree.TableHead, Children: []doctree.Node{makeRow(records[0])}},
	}
	if len(records) > 1 {
		rows := make([]doctree.Node, 0, len(records)-1)
		for _, record := range records[1:] {
			rows = append(rows, makeRow(record))
		}
		children = append(children, &doctree.Block{Kind: doctree.TableBody, Children: rows})
	}

	tree := []doctree.Node{&doctree.Block{Kind: doctree.Table, Children: children}}
	doctree.Normalize(tree)
	return tree, nil
}
