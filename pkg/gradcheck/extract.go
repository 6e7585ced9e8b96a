package gradcheck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/parser"
	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/rules"
)

// Parse extracts the checklist from a decoded HTML document.
func Parse(html string, opts Options) (*models.Checklist, error) {
	return parse(html, "", opts)
}

// ParseBytes decodes raw bytes (UTF-8, declared charset or Big5) and parses them.
func ParseBytes(raw []byte, contentType string, opts Options) (*models.Checklist, error) {
	html, err := DecodeHTML(raw, contentType)
	if err != nil {
		return nil, NewExtractionError("decode", err)
	}
	return parse(html, "", opts)
}

// ParseFile reads and parses an HTML file.
func ParseFile(path string, opts Options) (*models.Checklist, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	html, err := DecodeHTML(raw, "")
	if err != nil {
		return nil, NewExtractionError("decode", err)
	}
	return parse(html, filepath.Base(path), opts)
}

func parse(html, source string, opts Options) (*models.Checklist, error) {
	log := opts.logger()

	doc, err := parser.ParseDocument(strings.NewReader(html))
	if err != nil {
		return nil, NewExtractionError("document", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}

	table, ok := parser.LocateTable(doc, opts.locator())
	if !ok {
		return nil, &NotFoundError{Source: source}
	}

	result := &models.Checklist{
		Meta:    parser.ExtractMeta(table),
		Columns: []models.Column{},
		Data:    []models.Row{},
		Summary: models.NewSummary(),
	}
	if opts.ShouldIncludeSummary() {
		result.SubdomainReassignment = &models.Reassignment{Enabled: false}
	}

	keyMap := parser.DefaultHeaderKeyMap()
	headers := parser.ResolveHeader(table, keyMap)
	columns := len(headers)
	if columns == 0 {
		columns = parser.DefaultColumnCount
	}
	log.Debug().Int("headers", len(headers)).Int("columns", columns).Msg("header resolved")

	bodies := table.Descendants("tbody")
	if len(bodies) == 0 {
		log.Debug().Msg("table has no body")
		return result, nil
	}

	grid := parser.NormalizeGrid(bodies[0], columns)
	rows := parser.MaterializeRows(grid, headers, parser.RowOptions{
		KeyMap:    keyMap,
		KeepCells: opts.ShouldIncludeCells(),
	})
	log.Debug().Int("rows", len(rows)).Msg("rows materialized")

	for i, key := range keyMap.Keys(headers) {
		result.Columns = append(result.Columns, models.Column{Title: headers[i], Key: key})
	}

	if opts.ShouldIncludeSummary() {
		result.Summary = parser.ExtractSummary(table)

		if opts.Rules != nil {
			reassignment := rules.Reclassify(rows, opts.Rules.Reassignment)
			result.SubdomainReassignment = &reassignment
			if reassignment.Error != "" {
				log.Warn().Str("error", reassignment.Error).Msg("reclassification skipped")
			} else if reassignment.Enabled {
				log.Debug().
					Int("moved", reassignment.MovedCount).
					Float64("credits", reassignment.MovedCredits).
					Msg("sub-domain credits reclassified")
			}

			ruleSummary := rules.Apply(rows, opts.Rules, opts.now())
			result.RuleSummary = &ruleSummary
		}
	}

	result.Data = rows
	result.Count = len(rows)
	return result, nil
}
