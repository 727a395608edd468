package cypherlite

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rlch/cypherlite/analysis"
)

// Engine bundles a graph with the config it was loaded from and executes
// queries against it. Once constructed an Engine is read-only and safe for
// concurrent use.
type Engine struct {
	graph  *Graph
	config GraphConfig
	log    *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New wraps an already built graph.
func New(g *Graph, opts ...Option) *Engine {
	e := &Engine{graph: g, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FromJSON builds an engine from JSON text using an explicit config.
func FromJSON(data []byte, cfg GraphConfig, opts ...Option) (*Engine, error) {
	g, err := LoadGraphJSON(data, cfg)
	if err != nil {
		return nil, err
	}
	e := New(g, opts...)
	e.config = cfg
	e.log.Debug("graph loaded",
		zap.String("node_path", cfg.NodePath),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()))
	return e, nil
}

// FromJSONAuto builds an engine from JSON text, inferring the config by
// analyzing the document's structure.
func FromJSONAuto(data []byte, opts ...Option) (*Engine, error) {
	cfg, err := InferConfig(data)
	if err != nil {
		return nil, err
	}
	return FromJSON(data, *cfg, opts...)
}

// InferConfig analyzes JSON text and derives a GraphConfig from its most
// suitable node array.
func InferConfig(data []byte) (*GraphConfig, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	det, err := analysis.Analyze(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	if det.Primary == nil || det.Primary.IDField == "" {
		return nil, fmt.Errorf("%w: could not infer a node ID field", ErrInvalidData)
	}
	return &GraphConfig{
		NodePath:       det.Primary.Path,
		IDField:        det.Primary.IDField,
		LabelField:     det.Primary.LabelField,
		RelationFields: det.Primary.RelationFields,
	}, nil
}

// Execute parses and runs a query against the engine's graph.
func (e *Engine) Execute(query string) (*Result, error) {
	e.log.Debug("executing query", zap.String("query", query))
	res, err := Execute(query, e.graph)
	if err != nil {
		e.log.Debug("query failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	e.log.Debug("query done",
		zap.Int("columns", len(res.Columns)),
		zap.Int("rows", len(res.Rows)))
	return res, nil
}

// Graph exposes the underlying graph.
func (e *Engine) Graph() *Graph { return e.graph }

// Config returns the config the graph was loaded with. It is the zero
// value for engines built directly from a Graph.
func (e *Engine) Config() GraphConfig { return e.config }

// Schema summarizes the loaded graph.
func (e *Engine) Schema() *Schema { return GraphSchema(e.graph) }
