package image

import (
	"rgbsteg/internal/bits"
	"rgbsteg/pkg/config"
)

// channelWalker moves over channel bytes in buffer order (R, G, B, A, R, ...) ignoring pixel boundaries. Both passes
// of an encode or decode share one walker, so the payload starts right where the header ended.
//
// Bit rank r of a channel byte is bit r-1, least significant first. When a pass stops after touching a channel byte,
// the next pass starts on the following byte; when it stops before touching one, the next pass starts on it.
type channelWalker struct {
	pix    []byte
	cursor int
}

func newChannelWalker(pix []byte) *channelWalker {
	return &channelWalker{pix: pix}
}

// write moves bits from stream into the channel bytes, as many per byte as the options allow. It reports whether the
// stream was fully consumed. Bits written before running out of channel bytes are not rolled back.
func (w *channelWalker) write(stream bits.Stream, options config.ChannelOptions) (complete bool) {
	budgets := options.Budgets()
	for p := w.cursor; p < len(w.pix); p++ {
		budget := budgets[p%config.ChannelsPerPixel]
		for rank := byte(0); rank < budget; rank++ {
			bit, ok := stream.Next()
			if !ok {
				w.stopAt(p, rank)
				return true
			}
			w.pix[p] = w.pix[p]&^(1<<rank) | bit<<rank
		}
	}
	w.cursor = len(w.pix)

	_, more := stream.Next()
	return !more
}

// read appends bits from the channel bytes to out until out holds target bits. It reports whether target was reached
// before the channel bytes ran out.
func (w *channelWalker) read(out *bits.Bits, target int, options config.ChannelOptions) (complete bool) {
	budgets := options.Budgets()
	for p := w.cursor; p < len(w.pix); p++ {
		budget := budgets[p%config.ChannelsPerPixel]
		for rank := byte(0); rank < budget; rank++ {
			if out.Len() >= target {
				w.stopAt(p, rank)
				return true
			}
			out.Append((w.pix[p] >> rank) & 1)
		}
	}
	w.cursor = len(w.pix)
	return out.Len() >= target
}

func (w *channelWalker) stopAt(p int, rank byte) {
	if rank == 0 {
		w.cursor = p
	} else {
		w.cursor = p + 1
	}
}
