package lawxml

import (
	"encoding/xml"
	"strings"
)

// CellText flattens the inner XML of a cell into one line of text.
//
// Character data is concatenated in document order and whitespace runs are
// collapsed. <Ruby>base<Rt>reading</Rt></Ruby> becomes {base|reading} and
// <Fig src="..."/> becomes an image reference. Malformed input yields the
// text read up to the error.
func CellText(inner string) string {
	decoder := xml.NewDecoder(strings.NewReader(inner))
	decoder.Strict = false
	decoder.CharsetReader = charsetReader

	var (
		sb     strings.Builder
		base   strings.Builder
		rt     strings.Builder
		inRuby bool
		inRt   bool
	)

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "Ruby":
				inRuby = true
				base.Reset()
				rt.Reset()
			case "Rt":
				inRt = true
			case "Fig":
				for _, attr := range t.Attr {
					if attr.Name.Local == "src" && attr.Value != "" {
						sb.WriteString(" ![](" + attr.Value + ") ")
					}
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "Rt":
				inRt = false
			case "Ruby":
				inRuby = false
				sb.WriteString(formatRuby(base.String(), rt.String()))
			}
		case xml.CharData:
			switch {
			case inRt:
				rt.Write(t)
			case inRuby:
				base.Write(t)
			default:
				sb.Write(t)
			}
		}
	}

	return normalizeText(sb.String())
}

// Sentences returns the text of each <Sentence> element of inner, in
// document order. A cell without Sentence elements yields its whole text.
func Sentences(inner string) []string {
	decoder := xml.NewDecoder(strings.NewReader(inner))
	decoder.Strict = false
	decoder.CharsetReader = charsetReader

	var out []string
	found := false
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "Sentence" {
			continue
		}
		var sentence InnerElement
		if err := decoder.DecodeElement(&sentence, &start); err != nil {
			break
		}
		found = true
		if text := CellText(sentence.Inner); text != "" {
			out = append(out, text)
		}
	}

	if !found {
		if text := CellText(inner); text != "" {
			out = append(out, text)
		}
	}
	return out
}

func formatRuby(base, reading string) string {
	base = strings.TrimSpace(base)
	reading = strings.TrimSpace(reading)
	if reading == "" {
		return base
	}
	return "{" + base + "|" + reading + "}"
}

// normalizeText collapses whitespace, newlines included, and trims.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
