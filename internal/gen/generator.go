package gen

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"gentable/internal/definition"
	"gentable/internal/enumerate"
	"gentable/internal/table"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Indent is one nesting step of the initializer.
	Indent string
	// Style selects the leaf reference syntax.
	Style table.Style
	// Comments prepends a line naming the index axes of each table.
	Comments bool
	// Header, when non-empty, is emitted once before all tables.
	Header string
	// Concurrency bounds how many tables render at once. Zero means GOMAXPROCS.
	Concurrency int
	// Logger receives progress at debug level. Nil discards.
	Logger *slog.Logger
}

// DefaultGeneratorConfig returns the default generator configuration, which
// reproduces the reference layout byte for byte.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Indent: table.DefaultIndent,
		Style:  table.StyleCpp,
	}
}

// Generator renders table definitions.
type Generator struct {
	config  GeneratorConfig
	emitter table.Emitter
	logger  *slog.Logger
}

// Block is the rendered text of one table.
type Block struct {
	// Table is the table name.
	Table string
	// Entries is the number of leaves in the table.
	Entries int
	// Content is the declaration and initializer, without a trailing newline.
	Content string
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Generator{
		config: config,
		emitter: table.Emitter{
			Indent: config.Indent,
			Leaf:   config.Style.Formatter(),
		},
		logger: logger,
	}
}

// Generate renders every table. Blocks are returned in the order of tables
// regardless of which finishes first. The first failure cancels the rest and
// no blocks are returned.
func (g *Generator) Generate(ctx context.Context, tables []definition.Table) ([]Block, error) {
	blocks := make([]Block, len(tables))

	limit := g.config.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i := range tables {
		t := tables[i]

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()

			block, err := g.generateTable(t)
			if err != nil {
				return fmt.Errorf("generating %s: %w", t.Name, err)
			}

			g.logger.Debug("table generated",
				slog.String("table", t.Name),
				slog.String("dims", t.Dimensions().String()),
				slog.Int("entries", block.Entries),
				slog.Duration("elapsed", time.Since(start)))

			blocks[i] = block

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return blocks, nil
}

func (g *Generator) generateTable(t definition.Table) (Block, error) {
	dims := t.Dimensions()

	content, err := g.emitter.Generate(t.Name, dims)
	if err != nil {
		return Block{}, err
	}

	if g.config.Comments {
		content = "// " + axesComment(t) + "\n" + content
	}

	return Block{
		Table:   t.Name,
		Entries: enumerate.Count(dims),
		Content: content,
	}, nil
}

// axesComment names each index axis with its cardinality, e.g.
// [isp.Texture:2][isp.Offset:2][tsp.ShadInstr:4].
func axesComment(t definition.Table) string {
	dims := t.Dimensions()

	var b strings.Builder
	for i, name := range t.ParamNames() {
		fmt.Fprintf(&b, "[%s:%d]", name, dims[i])
	}

	return b.String()
}

// Join concatenates blocks, each followed by a newline, after the configured
// header.
func (g *Generator) Join(blocks []Block) string {
	var b strings.Builder

	if g.config.Header != "" {
		b.WriteString(g.config.Header)
		b.WriteString("\n\n")
	}

	for _, block := range blocks {
		b.WriteString(block.Content)
		b.WriteByte('\n')
	}

	return b.String()
}
