package effect

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/pathutil"
)

// NewStatusEffect builds an effect record carrying changes.
func NewStatusEffect(name, img, origin string, changes []domain.Change) domain.StatusEffect {
	return domain.StatusEffect{
		ID:      uuid.NewString(),
		Name:    name,
		Img:     img,
		Origin:  origin,
		Changes: append([]domain.Change(nil), changes...),
	}
}

// Attach appends eff to the effects list of doc.
func Attach(doc []byte, eff domain.StatusEffect) ([]byte, error) {
	raw, err := json.Marshal(eff)
	if err != nil {
		return doc, fmt.Errorf("marshal effect %s | %w", eff.Name, err)
	}
	if !pathutil.Get(doc, domain.EffectsPath).IsArray() {
		if doc, err = pathutil.SetRaw(doc, domain.EffectsPath, []byte("[]")); err != nil {
			return doc, err
		}
	}
	return pathutil.SetRaw(doc, domain.EffectsPath+".-1", raw)
}

// Merge adds changes to the effect named name in doc, attaching a new
// effect when none exists yet.
func Merge(doc []byte, name, img, origin string, changes []domain.Change) ([]byte, error) {
	effects := pathutil.Get(doc, domain.EffectsPath)
	if effects.IsArray() {
		for i, e := range effects.Array() {
			if e.Get("name").String() != name {
				continue
			}
			path := fmt.Sprintf("%s.%d.changes", domain.EffectsPath, i)
			var err error
			for _, c := range changes {
				raw, mErr := json.Marshal(c)
				if mErr != nil {
					return doc, fmt.Errorf("marshal change %s | %w", c.Key, mErr)
				}
				if !gjson.GetBytes(doc, path).IsArray() {
					if doc, err = pathutil.SetRaw(doc, path, []byte("[]")); err != nil {
						return doc, err
					}
				}
				if doc, err = pathutil.SetRaw(doc, path+".-1", raw); err != nil {
					return doc, err
				}
			}
			return doc, nil
		}
	}
	return Attach(doc, NewStatusEffect(name, img, origin, changes))
}

// Effects decodes the effect records attached to doc.
func Effects(doc []byte) ([]domain.StatusEffect, error) {
	res := pathutil.Get(doc, domain.EffectsPath)
	if !res.Exists() {
		return nil, nil
	}
	var out []domain.StatusEffect
	if err := json.Unmarshal([]byte(res.Raw), &out); err != nil {
		return nil, fmt.Errorf("decode effects | %w", err)
	}
	return out, nil
}
