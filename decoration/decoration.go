package decoration

import "github.com/gogpu/chart"

// Decoration is drawn after chart content, inside the dataset bounds.
type Decoration interface {
	Draw(ctx *chart.DrawContext, bounds chart.Rect)
}

// DrawAll draws decorations in order. Nil entries are skipped.
func DrawAll(ctx *chart.DrawContext, bounds chart.Rect, decorations ...Decoration) {
	for _, d := range decorations {
		if d != nil {
			d.Draw(ctx, bounds)
		}
	}
}
