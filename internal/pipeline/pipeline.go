// Package pipeline coordinates a whole batch: ingest, segmentation and
// field extraction, label parsing, matching, validation, and expansion.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/okempf/boardbatch/constants"
	"github.com/okempf/boardbatch/internal/common"
	"github.com/okempf/boardbatch/internal/entity"
	"github.com/okempf/boardbatch/internal/export"
	"github.com/okempf/boardbatch/internal/ingest"
	"github.com/okempf/boardbatch/internal/match"
	"github.com/okempf/boardbatch/internal/parse"
)

// Result carries everything a caller needs after one batch run.
type Result struct {
	Orders   []entity.OrderRecord // pre-expansion, annotated
	Expanded []entity.OrderRecord // one row per physical board
	Labels   []entity.ShippingLabel
}

// Processor runs whole batches. Each run is independent; nothing is shared
// across runs.
type Processor struct {
	Logger *slog.Logger
	Loader *ingest.Loader
	Match  match.Config
}

func NewProcessor(logger *slog.Logger, matchCfg match.Config) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger: logger,
		Loader: ingest.NewLoader(logger),
		Match:  matchCfg,
	}
}

// Run parses order and label uploads and returns the annotated tables.
// Label uploads may be empty; every order is then Missing.
func (p *Processor) Run(ctx context.Context, orderUploads, labelUploads []ingest.Upload) (*Result, error) {
	orderDocs := p.Loader.Load(constants.DocKindOrders, orderUploads)
	labelDocs := p.Loader.Load(constants.DocKindLabels, labelUploads)
	return p.RunDocuments(ctx, orderDocs, labelDocs)
}

// RunDirs is the filesystem variant used by the CLI. labelDir may be empty.
func (p *Processor) RunDirs(ctx context.Context, orderDir, labelDir string) (*Result, error) {
	orderDocs, err := p.Loader.LoadDir(constants.DocKindOrders, orderDir)
	if err != nil {
		return nil, common.WrapError(err, "read order dir")
	}
	var labelDocs []entity.Document
	if labelDir != "" {
		labelDocs, err = p.Loader.LoadDir(constants.DocKindLabels, labelDir)
		if err != nil {
			return nil, common.WrapError(err, "read label dir")
		}
	}
	return p.RunDocuments(ctx, orderDocs, labelDocs)
}

// RunDocuments is the text-level entrypoint: callers that already hold
// extracted page text (tests, other services) can skip PDF ingestion.
func (p *Processor) RunDocuments(ctx context.Context, orderDocs, labelDocs []entity.Document) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var orders []entity.OrderRecord
	for _, doc := range orderDocs {
		segments := parse.SplitSegments(doc.FullText())
		p.Logger.Info("segmented document", "doc", doc.Name, "segments", len(segments))
		for _, seg := range segments {
			orders = append(orders, parse.ExtractOrder(seg))
		}
	}
	if len(orders) == 0 {
		return nil, common.ErrNoOrders
	}

	var labels []entity.ShippingLabel
	for _, doc := range labelDocs {
		found := parse.ExtractLabels(&doc)
		p.Logger.Info("parsed label document", "doc", doc.Name, "pages", len(doc.Pages), "labels", len(found))
		labels = append(labels, found...)
	}

	orders = match.Orders(orders, labels, p.Match)

	schema, err := parse.CompileOrderSchema()
	if err != nil {
		return nil, common.NewAppError("SCHEMA_COMPILE", "compile order record schema", err)
	}
	reviews := 0
	for i := range orders {
		if err := parse.ValidateOrder(schema, &orders[i]); err != nil {
			orders[i].NeedsReview = true
			reviews++
			p.Logger.Warn("record needs review", "order_id", orders[i].OrderID, "error", err)
		}
	}

	matched := 0
	for i := range orders {
		if orders[i].MatchedLabelID != "" {
			matched++
		}
	}
	p.Logger.Info("batch parsed",
		"orders", len(orders),
		"labels", len(labels),
		"matched", matched,
		"needs_review", reviews,
	)

	return &Result{
		Orders:   orders,
		Expanded: export.ExpandByQuantity(orders),
		Labels:   labels,
	}, nil
}
