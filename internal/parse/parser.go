// Package parse implements the ingestion engine: BOM-aware reading, header
// resolution against the column table, per-cell coercion into the tri-state
// value model, row assembly and dataset construction. A parse either fails
// outright on a structural mismatch or succeeds with a dataset plus a
// warnings report; everything in between is recorded, never thrown away.
package parse

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"capacidad/internal/config"
	"capacidad/internal/derive"
	"capacidad/internal/schema"
	"capacidad/pkg/contracts/domain"
)

// Parser runs one or more parse invocations over capacity publications.
type Parser struct {
	cfg    config.EngineConfig
	logger *slog.Logger
	table  []schema.ColumnSpec
	engine derive.Engine
}

// NewParser creates a parser. A nil logger falls back to slog.Default().
func NewParser(cfg config.EngineConfig, logger *slog.Logger) (*Parser, error) {
	if logger == nil {
		logger = slog.Default()
	}
	table, err := schema.Table()
	if err != nil {
		return nil, fmt.Errorf("load column table: %w", err)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Parser{
		cfg:    cfg,
		logger: logger,
		table:  table,
		engine: derive.New(cfg.ToleranceMW),
	}, nil
}

// rowResult is the outcome of one data row. Each worker writes only its own
// slot, so merging in slice order keeps warning order reproducible across
// runs regardless of parallelism.
type rowResult struct {
	node     *domain.Node
	rejected *domain.RejectedRow
}

// Parse reads one publication and returns the dataset. The only fatal
// condition is a structural mismatch of the header; data-row anomalies
// degrade to rejected rows and warnings.
func (p *Parser) Parse(r io.Reader, source string) (*domain.Dataset, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) < schema.HeaderRows {
		return nil, &domain.StructuralMismatchError{
			Detail: fmt.Sprintf("source has %d rows, need %d header rows", len(rows), schema.HeaderRows),
		}
	}

	hdr, err := resolveHeader(rows[:schema.HeaderRows], p.table)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("header resolved",
		slog.String("source", source),
		slog.String("schema_version", schema.Version()),
		slog.String("first_column", hdr.fullLabels[0]))

	dataRows := rows[schema.HeaderRows:]
	results := make([]rowResult, len(dataRows))

	workers := p.cfg.Workers
	if workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}
	if workers > 1 && len(dataRows) > 1 {
		var g errgroup.Group
		g.SetLimit(workers)
		for i := range dataRows {
			i := i
			g.Go(func() error {
				results[i] = p.processRow(i, dataRows[i])
				return nil
			})
		}
		// Workers never return errors; anomalies land in their slots.
		_ = g.Wait()
	} else {
		for i := range dataRows {
			results[i] = p.processRow(i, dataRows[i])
		}
	}

	ds := &domain.Dataset{
		ParseID: uuid.New(),
		Source:  source,
	}
	for _, res := range results {
		switch {
		case res.rejected != nil:
			ds.Rejected = append(ds.Rejected, *res.rejected)
			p.logger.Warn("row rejected",
				slog.Int("row", res.rejected.Row),
				slog.String("reason", res.rejected.Reason))
		case res.node != nil:
			ds.Nodes = append(ds.Nodes, *res.node)
			ds.Warnings = append(ds.Warnings, res.node.Warnings...)
		}
	}

	p.checkDataset(ds, len(dataRows))

	ds.Summary = domain.Summary{
		RowsRead:     len(dataRows),
		RowsRejected: len(ds.Rejected),
		Nodes:        len(ds.Nodes),
		Warnings:     len(ds.Warnings),
	}
	p.logger.Info("parse complete",
		slog.String("source", source),
		slog.String("parse_id", ds.ParseID.String()),
		slog.Int("rows_read", ds.Summary.RowsRead),
		slog.Int("rows_rejected", ds.Summary.RowsRejected),
		slog.Int("nodes", ds.Summary.Nodes),
		slog.Int("warnings", ds.Summary.Warnings))
	return ds, nil
}

// processRow assembles and derives one data row. rowIdx is the 0-based
// index within the data block; the stored row position is 1-based within
// the whole file, header included.
func (p *Parser) processRow(rowIdx int, cells []string) rowResult {
	rowNum := schema.HeaderRows + rowIdx + 1
	node, err := assembleRow(rowNum, cells, p.table)
	if err != nil {
		return rowResult{rejected: &domain.RejectedRow{Row: rowNum, Reason: err.Error()}}
	}
	node.Warnings = append(node.Warnings, p.engine.Derive(&node)...)
	return rowResult{node: &node}
}

// checkDataset runs the dataset-level expectations: identity uniqueness and
// the publication's expected row count. Both degrade to warnings.
func (p *Parser) checkDataset(ds *domain.Dataset, rowsRead int) {
	seen := make(map[string]int, len(ds.Nodes))
	for i := range ds.Nodes {
		n := &ds.Nodes[i]
		id := n.Identity()
		if prev, dup := seen[id]; dup {
			ds.Warnings = append(ds.Warnings, domain.Warning{
				Row:     n.Row,
				Kind:    domain.WarnDataset,
				Message: fmt.Sprintf("duplicate node identity %s, first seen at row %d", id, prev),
			})
		} else {
			seen[id] = n.Row
		}
	}

	if p.cfg.ExpectedRows > 0 && rowsRead != p.cfg.ExpectedRows {
		ds.Warnings = append(ds.Warnings, domain.Warning{
			Kind:    domain.WarnDataset,
			Message: fmt.Sprintf("read %d data rows, publication expects %d", rowsRead, p.cfg.ExpectedRows),
		})
	}
}
