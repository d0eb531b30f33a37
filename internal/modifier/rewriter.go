package modifier

import (
	"context"
	"fmt"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/effect"
	"github.com/osse101/CraftPanel_Go/internal/logger"
	"github.com/osse101/CraftPanel_Go/internal/script"
)

// Rewriter applies chosen modifiers to the results of a craft.
type Rewriter struct {
	applier *effect.Applier
	invoker *script.Invoker
}

// NewRewriter creates a Rewriter.
func NewRewriter(applier *effect.Applier, invoker *script.Invoker) *Rewriter {
	return &Rewriter{applier: applier, invoker: invoker}
}

// Apply runs each modifier's craft script and then its changes, in the
// given order. Scripts receive args followed by the modifier as "doc".
// Invalid changes are skipped and reported as notices.
func (w *Rewriter) Apply(ctx context.Context, tx *domain.Transaction, mods []*domain.Modifier, mergeEffects bool, args script.Args) []domain.Notice {
	var notices []domain.Notice
	for _, m := range mods {
		if m.CraftScript != "" {
			callArgs := append(append(script.Args(nil), args...), script.Arg{Name: "doc", Value: m})
			w.invoker.Run(ctx, domain.ScriptSiteModifier, m.CraftScript, callArgs)
		}
		if len(m.Changes) == 0 {
			continue
		}
		for i := range tx.Results {
			notices = append(notices, w.rewrite(ctx, &tx.Results[i], m, mergeEffects)...)
		}
	}
	return notices
}

func (w *Rewriter) rewrite(ctx context.Context, p *domain.Product, m *domain.Modifier, mergeEffects bool) []domain.Notice {
	log := logger.FromContext(ctx)
	item := p.Item
	origin := ModifierUUIDPrefix + m.ID

	if m.AsAE {
		var err error
		var out []byte
		if mergeEffects {
			out, err = effect.Merge(item.Data, item.Name, item.Img, origin, m.Changes)
		} else {
			out, err = effect.Attach(item.Data, effect.NewStatusEffect(m.Name, m.Img, origin, m.Changes))
		}
		if err != nil {
			log.Warn(LogMsgEffectAttachFailed, "modifier", m.ID, "item", item.UUID, "error", err)
			return []domain.Notice{{Level: domain.NoticeWarn, Message: fmt.Sprintf("%s: %v", m.Name, err)}}
		}
		item.Data = out
		return nil
	}

	var notices []domain.Notice
	for _, c := range m.Changes {
		out, err := w.applier.Apply(item.Data, c)
		if err != nil {
			log.Warn(LogMsgChangeSkipped, "modifier", m.ID, "item", item.UUID, "key", c.Key, "error", err)
			notices = append(notices, domain.Notice{Level: domain.NoticeWarn, Message: fmt.Sprintf("%s: %v", m.Name, err)})
			continue
		}
		item.Data = out
	}
	return notices
}
