package render

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

var attrName = regexp.MustCompile(`^[a-zA-Z_:][-a-zA-Z0-9_:.]*$`)

var renamed = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

var urlAttrs = map[string]bool{
	"href":       true,
	"src":        true,
	"action":     true,
	"formaction": true,
	"xlink:href": true,
}

// CSS properties that take plain numbers.
var unitless = map[string]bool{
	"opacity":     true,
	"z-index":     true,
	"flex":        true,
	"flex-grow":   true,
	"flex-shrink": true,
	"font-weight": true,
	"line-height": true,
	"order":       true,
	"zoom":        true,
}

// Attributes turns props into HTML attributes, in prop order. Keys listed in
// skip are consumed by the component and not emitted. A later prop mapping
// to the same attribute replaces the earlier one.
func Attributes(props uischema.Props, skip ...string) []html.Attribute {
	var (
		out []html.Attribute
		pos = map[string]int{}
	)
	for _, p := range props {
		if p.Key == "children" || contains(skip, p.Key) {
			continue
		}
		attr, ok := attribute(p.Key, p.Value)
		if !ok {
			continue
		}
		if i, seen := pos[attr.Key]; seen {
			out[i] = attr
			continue
		}
		pos[attr.Key] = len(out)
		out = append(out, attr)
	}
	return out
}

func attribute(key string, v uischema.Value) (html.Attribute, bool) {
	if !attrName.MatchString(key) || strings.HasPrefix(strings.ToLower(key), "on") {
		return html.Attribute{}, false
	}
	if name, ok := renamed[key]; ok {
		key = name
	}

	switch v.Kind() {
	case uischema.KindNull:
		return html.Attribute{}, false
	case uischema.KindBool:
		if !v.Bool() {
			return html.Attribute{}, false
		}
		return html.Attribute{Key: key}, true
	case uischema.KindString:
		if urlAttrs[strings.ToLower(key)] && unsafeURL(v.Str()) {
			return html.Attribute{}, false
		}
		return html.Attribute{Key: key, Val: v.Str()}, true
	case uischema.KindNumber:
		return html.Attribute{Key: key, Val: v.Text()}, true
	case uischema.KindObject:
		if key == "style" {
			return html.Attribute{Key: key, Val: CSS(v)}, true
		}
	}
	return html.Attribute{Key: key, Val: v.JSON()}, true
}

func unsafeURL(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
	return strings.HasPrefix(s, "javascript:") || strings.HasPrefix(s, "vbscript:")
}

// CSS renders a style object as declarations, e.g. {"marginTop":4} becomes
// "margin-top: 4px". Null and boolean entries are skipped.
func CSS(style uischema.Value) string {
	entries, err := style.Object()
	if err != nil {
		return ""
	}
	decls := make([]string, 0, len(entries))
	for _, e := range entries {
		name := cssName(e.Key)
		var val string
		switch e.Value.Kind() {
		case uischema.KindString:
			val = e.Value.Str()
		case uischema.KindNumber:
			val = e.Value.Text()
			if e.Value.Number() != 0 && !unitless[name] && !strings.HasPrefix(name, "--") {
				val += "px"
			}
		default:
			continue
		}
		if strings.ContainsAny(val, ";{}") {
			continue
		}
		decls = append(decls, name+": "+val)
	}
	return strings.Join(decls, "; ")
}

func cssName(key string) string {
	if strings.HasPrefix(key, "--") {
		return key
	}
	var b strings.Builder
	for i, r := range key {
		if r >= 'A' && r <= 'Z' {
			if i > 0 || strings.HasPrefix(key, "Webkit") || strings.HasPrefix(key, "Moz") {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	name := b.String()
	if strings.HasPrefix(name, "ms-") {
		name = "-" + name
	}
	return name
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
