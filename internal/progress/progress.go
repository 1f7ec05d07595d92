// Package progress draws the per-read progress bar on stderr.
package progress

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Bar counts processed reads. The zero value and a nil *Bar are no-ops, so
// callers never need to check whether the bar is enabled.
type Bar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

// New starts a bar over total reads on w. A nil writer or an unknown
// (negative) total returns a no-op bar.
func New(w io.Writer, total int) *Bar {
	if w == nil || total < 0 {
		return &Bar{}
	}
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))
	const label = "processed reads: "
	// a zero total keeps mpb from completing on its own; Finish decides
	bar := p.AddBar(0,
		mpb.PrependDecorators(
			decor.Name(label, decor.WC{W: len(label), C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.AverageETA(decor.ET_STYLE_GO),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	bar.SetTotal(int64(total), false)
	return &Bar{p: p, bar: bar}
}

// Increment advances the bar by one read.
func (b *Bar) Increment() {
	if b == nil || b.bar == nil {
		return
	}
	b.bar.Increment()
}

// Finish completes the bar (ok) or aborts it, then waits for the final
// render.
func (b *Bar) Finish(ok bool) {
	if b == nil || b.bar == nil {
		return
	}
	if ok {
		// the pre-count is a fast estimate; settle on what was really read
		b.bar.SetTotal(-1, true)
	} else {
		b.bar.Abort(false)
	}
	b.p.Wait()
}
