// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/polyalg/series/coeff"
	"github.com/polyalg/series/key"
	"github.com/polyalg/series/series"
)

// maxTerms bounds how many terms Plain/TeX emit before truncating with an
// ellipsis. Every term is still rendered and sorted before the cut, so only
// the length of the output is bounded, not the work.
const maxTerms = 50

// renderedTerm is one term reduced to its textual pieces, ready to be
// stitched into the final expression.
type renderedTerm struct {
	negative  bool
	magnitude string // coefficient text with its sign stripped, "" if the coefficient is exactly 1 and the key is not the unit
	keyText   string // "" for the unit key
	sortKey   string
}

func splitSign(s string) (negative bool, rest string) {
	if strings.HasPrefix(s, "-") {
		return true, s[1:]
	}
	return false, s
}

func needsBrackets(s string) bool {
	return strings.ContainsAny(s, "+- ")
}

func collectTerms[K key.Key[K], C coeff.Ring[C], Tag any](p *series.Series[K, C, Tag], tex bool) ([]renderedTerm, int, error) {
	s := p.SymbolSet()
	terms := p.Terms()
	out := make([]renderedTerm, 0, len(terms))
	for _, t := range terms {
		var keyBuf bytes.Buffer
		var err error
		if tex {
			err = t.Key.WriteTeX(&keyBuf, s)
		} else {
			err = t.Key.WritePlain(&keyBuf, s)
		}
		if err != nil {
			return nil, 0, err
		}
		cfText := fmt.Sprintf("%v", t.Cf)
		neg, mag := splitSign(cfText)
		rt := renderedTerm{negative: neg, keyText: keyBuf.String()}
		if mag == "1" && rt.keyText != "" {
			rt.magnitude = ""
		} else if needsBrackets(mag) {
			if tex {
				rt.magnitude = `\left(` + mag + `\right)`
			} else {
				rt.magnitude = "(" + mag + ")"
			}
		} else {
			rt.magnitude = mag
		}
		rt.sortKey = rt.keyText + "\x00" + rt.magnitude
		out = append(out, rt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].sortKey < out[j].sortKey })
	truncated := 0
	if len(out) > maxTerms {
		truncated = len(out) - maxTerms
		out = out[:maxTerms]
	}
	return out, truncated, nil
}

func compose(terms []renderedTerm, truncated int, tex bool, multSep, ellipsis string) string {
	if len(terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range terms {
		body := t.magnitude
		if t.keyText != "" {
			if body == "" {
				body = t.keyText
			} else {
				body = body + multSep + t.keyText
			}
		} else if body == "" {
			body = "1"
		}
		switch {
		case i == 0 && t.negative:
			b.WriteString("-")
			b.WriteString(body)
		case i == 0:
			b.WriteString(body)
		case t.negative:
			b.WriteString(" - ")
			b.WriteString(body)
		default:
			b.WriteString(" + ")
			b.WriteString(body)
		}
	}
	if truncated > 0 {
		b.WriteString(" + ")
		b.WriteString(ellipsis)
	}
	return b.String()
}

// Plain renders p as a plain-text expression, terms separated by "*"
// between a coefficient and its monomial, "+"/"-" between terms.
func Plain[K key.Key[K], C coeff.Ring[C], Tag any](p *series.Series[K, C, Tag]) (string, error) {
	terms, truncated, err := collectTerms(p, false)
	if err != nil {
		return "", err
	}
	return compose(terms, truncated, false, "*", "..."), nil
}

// TeX renders p as a LaTeX expression, a coefficient and its monomial
// juxtaposed directly as LaTeX does, terms separated by "+"/"-".
func TeX[K key.Key[K], C coeff.Ring[C], Tag any](p *series.Series[K, C, Tag]) (string, error) {
	terms, truncated, err := collectTerms(p, true)
	if err != nil {
		return "", err
	}
	return compose(terms, truncated, true, "", `\ldots`), nil
}
