package classify

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/talentforge/recruiting-agent/agent/contract"
)

// Env snapshot keys for explicit caller overrides. Read from the
// RequestContext env snapshot, never from the live process environment.
const (
	EnvInteractionType = "RECRUITING_AGENT_INTERACTION_TYPE"
	EnvForceModel      = "RECRUITING_AGENT_FORCE_MODEL"
)

// Overrides carries explicit caller overrides for one classification.
// ForcedModelID wins over ForcedType; ForcedType wins over signals.
type Overrides struct {
	ForcedType    *contractx.InteractionType
	ForcedModelID string
}

// OverridesFromEnv derives overrides from the request's env snapshot.
// Unrecognized type values are ignored rather than failing the request.
func OverridesFromEnv(env map[string]string) Overrides {
	var o Overrides
	if len(env) == 0 {
		return o
	}
	switch contractx.InteractionType(strings.ToLower(strings.TrimSpace(env[EnvInteractionType]))) {
	case contractx.InteractionVoice:
		t := contractx.InteractionVoice
		o.ForcedType = &t
	case contractx.InteractionText:
		t := contractx.InteractionText
		o.ForcedType = &t
	}
	o.ForcedModelID = strings.TrimSpace(env[EnvForceModel])
	return o
}

// Classifier combines the five extracted signals with any overrides into a
// single interaction type. Classification is a pure function of its inputs:
// no clock, no randomness, safe to memoize and to call concurrently.
type Classifier struct {
	extractor contractx.Extractor
	models    contractx.DescriptorSource
}

func NewClassifier(extractor contractx.Extractor, models contractx.DescriptorSource) (*Classifier, error) {
	if extractor == nil {
		return nil, fmt.Errorf("%w: extractor is required", contractx.ErrValidation)
	}
	if models == nil {
		return nil, fmt.Errorf("%w: descriptor source is required", contractx.ErrValidation)
	}
	return &Classifier{extractor: extractor, models: models}, nil
}

// Classify resolves the interaction type for one request.
//
// Precedence, highest first: forced model id (the type is whatever the
// registered model is declared to serve), forced type, then logical OR across
// all five signals. The OR policy deliberately favors false positives: routing
// a text request to a voice-capable model is cheaper than routing a genuine
// voice session to a text-only model.
func (c *Classifier) Classify(rc contractx.RequestContext, o Overrides) (contractx.InteractionType, error) {
	if forced := strings.TrimSpace(o.ForcedModelID); forced != "" {
		desc, ok := c.models.Descriptor(forced)
		if !ok {
			return "", fmt.Errorf("%w: forced model id=%q", contractx.ErrUnknownModel, forced)
		}
		log.Debug().Str("model_id", forced).Str("type", string(desc.ServedType())).
			Msg("classification bypassed by forced model id")
		return desc.ServedType(), nil
	}

	if o.ForcedType != nil {
		if !o.ForcedType.Valid() {
			return "", fmt.Errorf("%w: forced type=%q", contractx.ErrValidation, *o.ForcedType)
		}
		log.Debug().Str("type", string(*o.ForcedType)).Msg("classification bypassed by forced type")
		return *o.ForcedType, nil
	}

	signals := c.extractor.Extract(rc)
	if signals.AnyPositive() {
		fired := signals.Fired()
		names := make([]string, 0, len(fired))
		for _, n := range fired {
			names = append(names, string(n))
		}
		log.Info().Strs("signals", names).Msg("voice signals fired")
		return contractx.InteractionVoice, nil
	}

	// Conservative default: absence of every signal means text.
	return contractx.InteractionText, nil
}
