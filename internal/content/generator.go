// Package content produces marketing copy for products. The shipped
// generator is deterministic and template-based; the Generator interface is
// the seam where a remote model-backed implementation would plug in, so the
// rate limiter lives in front of generation rather than inside any one
// implementation's client.
package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/shoppilot/shoppilot-assistant/internal/model"
	"golang.org/x/time/rate"
)

type Generator interface {
	GenerateDescription(ctx context.Context, p *model.Product) (string, error)
}

type TemplateGenerator struct {
	limiter *rate.Limiter
}

// NewTemplateGenerator builds a generator throttled to rps requests per
// second with the given burst. Wait blocks on ctx, so callers must not hold
// store state while generating.
func NewTemplateGenerator(rps float64, burst int) *TemplateGenerator {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &TemplateGenerator{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (g *TemplateGenerator) GenerateDescription(ctx context.Context, p *model.Product) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("content generation throttled: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: a %s pick", p.Name, strings.ToLower(p.Category))
	if p.Collection != nil && *p.Collection != "" {
		fmt.Fprintf(&b, " from our %s collection", *p.Collection)
	}
	b.WriteString(".")

	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, " Highlights: %s.", strings.Join(p.Tags, ", "))
	}
	fmt.Fprintf(&b, " Available now at $%.2f.", p.Price)
	if p.Stock > 0 && p.Stock <= 5 {
		fmt.Fprintf(&b, " Only %d left in stock.", p.Stock)
	}
	return b.String(), nil
}
