package crafting

import (
	"context"

	"github.com/osse101/CraftPanel_Go/internal/domain"
)

type sinkKey struct{}

// noticeSink collects the notices raised during one session operation,
// including those reported from inside script invocations.
type noticeSink struct {
	notices []domain.Notice
}

func (n *noticeSink) add(level domain.NoticeLevel, msg string) {
	n.notices = append(n.notices, domain.Notice{Level: level, Message: msg})
}

func (n *noticeSink) info(msg string) { n.add(domain.NoticeInfo, msg) }
func (n *noticeSink) warn(msg string) { n.add(domain.NoticeWarn, msg) }

func (n *noticeSink) extend(notices []domain.Notice) {
	n.notices = append(n.notices, notices...)
}

// withSink attaches a sink to ctx. When ctx already carries one it is
// reused and owned reports false.
func withSink(ctx context.Context) (context.Context, *noticeSink, bool) {
	if sink := sinkFrom(ctx); sink != nil {
		return ctx, sink, false
	}
	sink := &noticeSink{}
	return context.WithValue(ctx, sinkKey{}, sink), sink, true
}

func sinkFrom(ctx context.Context) *noticeSink {
	sink, _ := ctx.Value(sinkKey{}).(*noticeSink)
	return sink
}
