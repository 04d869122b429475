package translate

import (
	"context"
	"strings"
	"sync"

	"ragdesk/internal/contextutil"
	"ragdesk/internal/textscript"
)

// maxTranslateChars caps the text length handed to the translation server,
// bounding per-snippet latency. Longer input is truncated before translating.
const maxTranslateChars = 512

// Outcome states what the gate did with a snippet. Passthrough is the normal
// case, not an error: translation is best-effort and must never fail the
// retrieval flow around it.
type Outcome string

const (
	// OutcomeTranslated: the provider was invoked and its output returned.
	OutcomeTranslated Outcome = "translated"
	// OutcomePassthrough: translation was not wanted (already in the target
	// script, mixed-script, or blank input).
	OutcomePassthrough Outcome = "passthrough"
	// OutcomeUnavailable: translation was wanted but no provider is
	// configured.
	OutcomeUnavailable Outcome = "unavailable"
	// OutcomeFailed: the provider was invoked and errored; the original
	// text is returned.
	OutcomeFailed Outcome = "failed"
)

// Result is the gate's decision for one snippet.
type Result struct {
	Text    string
	Outcome Outcome
}

// Gate decides, per snippet and target display language, whether to invoke
// the translation provider. The two direction handles are built lazily on
// first use and then reused for the life of the process.
//
// The decision is script-based: a snippet is translated only when it is
// written purely in the opposite script of the target language. Mixed-script
// text is left untouched: translating it risks garbling the part already in
// the target script.
type Gate struct {
	baseURL string
	apiKey  string

	once   sync.Once
	zhToEn Translator
	enToZh Translator
}

// NewGate creates a translation gate. An empty baseURL means no translation
// server is configured and every snippet passes through unchanged.
func NewGate(baseURL, apiKey string) *Gate {
	return &Gate{baseURL: baseURL, apiKey: apiKey}
}

// init builds the direction handles exactly once.
func (g *Gate) init() {
	g.once.Do(func() {
		if g.baseURL == "" {
			return
		}
		g.zhToEn = NewClient(g.baseURL, g.apiKey, LangChinese, LangEnglish)
		g.enToZh = NewClient(g.baseURL, g.apiKey, LangEnglish, LangChinese)
	})
}

// Available reports whether a translation provider is configured.
func (g *Gate) Available() bool {
	g.init()
	return g.zhToEn != nil && g.enToZh != nil
}

// MaybeTranslate returns text translated into target when that is both
// useful and possible, and the original text otherwise. It never returns an
// error: provider failures degrade to the original text with OutcomeFailed.
func (g *Gate) MaybeTranslate(ctx context.Context, text string, target Lang) Result {
	g.init()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{Text: text, Outcome: OutcomePassthrough}
	}

	cjk := textscript.HasCJK(trimmed)
	latin := textscript.HasLatin(trimmed)

	var translator Translator
	switch target {
	case LangEnglish:
		// Already English-ish, or mixed: don't translate.
		if !cjk || latin {
			return Result{Text: text, Outcome: OutcomePassthrough}
		}
		translator = g.zhToEn
	case LangChinese:
		// Already Chinese-ish, or mixed: don't translate.
		if !latin || cjk {
			return Result{Text: text, Outcome: OutcomePassthrough}
		}
		translator = g.enToZh
	default:
		return Result{Text: text, Outcome: OutcomePassthrough}
	}

	if translator == nil {
		return Result{Text: text, Outcome: OutcomeUnavailable}
	}

	translated, err := translator.Translate(ctx, truncate(trimmed, maxTranslateChars))
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "translation failed, returning original text",
			"target", string(target), "error", err)
		return Result{Text: text, Outcome: OutcomeFailed}
	}

	return Result{Text: translated, Outcome: OutcomeTranslated}
}

// truncate clips s to at most max characters.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
