package render

import (
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

// Button renders a <button>. Text comes from the children prop when the
// node has no children.
func Button(props uischema.Props, children []*html.Node) *html.Node {
	attrs := withClass(Attributes(props), "uigen-button")
	if _, ok := props.Get("type"); !ok {
		attrs = append(attrs, html.Attribute{Key: "type", Val: "button"})
	}
	return element(atom.Button, attrs, content(props, children)...)
}

// Card renders a bordered container with an optional title.
func Card(props uischema.Props, children []*html.Node) *html.Node {
	card := element(atom.Div, withClass(Attributes(props, "title"), "uigen-card"))
	if title, ok := textProp(props, "title"); ok {
		card.AppendChild(element(atom.H2, classAttr("uigen-card-title"), text(title)))
	}
	appendAll(card, content(props, children))
	return card
}

// Input renders an <input>, wrapped in a <label> when a label prop is set.
func Input(props uischema.Props, children []*html.Node) *html.Node {
	input := element(atom.Input, withClass(Attributes(props, "label"), "uigen-input"))
	label, ok := textProp(props, "label")
	if !ok && len(children) == 0 {
		return input
	}
	field := element(atom.Label, classAttr("uigen-field"))
	if ok {
		field.AppendChild(element(atom.Span, classAttr("uigen-field-label"), text(label)))
	}
	field.AppendChild(input)
	appendAll(field, children)
	return field
}

// Sidebar renders an <aside> with a navigation list built from items.
func Sidebar(props uischema.Props, children []*html.Node) *html.Node {
	aside := element(atom.Aside, withClass(Attributes(props, "items", "title"), "uigen-sidebar"))
	if title, ok := textProp(props, "title"); ok {
		aside.AppendChild(element(atom.H2, classAttr("uigen-sidebar-title"), text(title)))
	}
	if list := linkList(props); list != nil {
		aside.AppendChild(element(atom.Nav, nil, list))
	}
	appendAll(aside, content(props, children))
	return aside
}

// Modal renders a dialog panel.
func Modal(props uischema.Props, children []*html.Node) *html.Node {
	attrs := withClass(Attributes(props, "title"), "uigen-modal")
	attrs = append(attrs,
		html.Attribute{Key: "role", Val: "dialog"},
		html.Attribute{Key: "aria-modal", Val: "true"},
	)
	modal := element(atom.Div, attrs)
	if title, ok := textProp(props, "title"); ok {
		modal.AppendChild(element(atom.H2, classAttr("uigen-modal-title"), text(title)))
	}
	appendAll(modal, content(props, children))
	return modal
}

// Navbar renders a top navigation bar with an optional brand and links.
func Navbar(props uischema.Props, children []*html.Node) *html.Node {
	nav := element(atom.Nav, withClass(Attributes(props, "items", "title", "brand"), "uigen-navbar"))
	brand, ok := textProp(props, "brand")
	if !ok {
		brand, ok = textProp(props, "title")
	}
	if ok {
		nav.AppendChild(element(atom.Span, classAttr("uigen-navbar-brand"), text(brand)))
	}
	if list := linkList(props); list != nil {
		nav.AppendChild(list)
	}
	appendAll(nav, content(props, children))
	return nav
}

// Chart renders data as horizontal bars scaled to the largest value.
// data items are numbers or {"label", "value"} objects.
func Chart(props uischema.Props, children []*html.Node) *html.Node {
	fig := element(atom.Figure, withClass(Attributes(props, "data", "title", "type"), "uigen-chart"))
	if title, ok := textProp(props, "title"); ok {
		fig.AppendChild(element(atom.Figcaption, nil, text(title)))
	}

	type bar struct {
		label string
		value float64
	}
	var bars []bar
	if data, ok := props.Get("data"); ok {
		items, _ := data.Array()
		for i, item := range items {
			b := bar{label: strconv.Itoa(i + 1)}
			switch item.Kind() {
			case uischema.KindNumber:
				b.value = item.Number()
			case uischema.KindObject:
				fields, _ := item.Object()
				if l, ok := textProp(fields, "label"); ok {
					b.label = l
				} else if l, ok := textProp(fields, "name"); ok {
					b.label = l
				}
				if v, ok := fields.Get("value"); ok && v.Kind() == uischema.KindNumber {
					b.value = v.Number()
				}
			default:
				continue
			}
			bars = append(bars, b)
		}
	}

	var peak float64
	for _, b := range bars {
		if b.value > peak {
			peak = b.value
		}
	}
	for _, b := range bars {
		pct := 0.0
		if peak > 0 && b.value > 0 {
			pct = b.value / peak * 100
		}
		width := uischema.NumberValue(float64(int(pct*10+0.5)) / 10).Text()
		row := element(atom.Div, classAttr("uigen-chart-row"),
			element(atom.Span, classAttr("uigen-chart-label"), text(b.label)),
			element(atom.Div, []html.Attribute{
				{Key: "class", Val: "uigen-chart-bar"},
				{Key: "style", Val: "width: " + width + "%"},
			}, text(uischema.NumberValue(b.value).Text())),
		)
		fig.AppendChild(row)
	}
	appendAll(fig, children)
	return fig
}

// Table renders columns and rows. Rows are arrays of cells or objects keyed
// by column name; without columns, the first object row supplies them.
func Table(props uischema.Props, children []*html.Node) *html.Node {
	table := element(atom.Table, withClass(Attributes(props, "columns", "rows"), "uigen-table"))

	var columns []string
	if v, ok := props.Get("columns"); ok {
		items, _ := v.Array()
		for _, item := range items {
			if item.Kind() == uischema.KindObject {
				fields, _ := item.Object()
				if l, ok := textProp(fields, "label"); ok {
					columns = append(columns, l)
					continue
				}
				if k, ok := textProp(fields, "key"); ok {
					columns = append(columns, k)
					continue
				}
			}
			columns = append(columns, item.Text())
		}
	}

	var rows []uischema.Value
	if v, ok := props.Get("rows"); ok {
		rows, _ = v.Array()
	}
	if len(columns) == 0 && len(rows) > 0 && rows[0].Kind() == uischema.KindObject {
		first, _ := rows[0].Object()
		for _, f := range first {
			columns = append(columns, f.Key)
		}
	}

	if len(columns) > 0 {
		tr := element(atom.Tr, nil)
		for _, c := range columns {
			tr.AppendChild(element(atom.Th, nil, text(c)))
		}
		table.AppendChild(element(atom.Thead, nil, tr))
	}

	if len(rows) > 0 {
		body := element(atom.Tbody, nil)
		for _, row := range rows {
			tr := element(atom.Tr, nil)
			switch row.Kind() {
			case uischema.KindArray:
				cells, _ := row.Array()
				for _, cell := range cells {
					tr.AppendChild(element(atom.Td, nil, text(cell.Text())))
				}
			case uischema.KindObject:
				fields, _ := row.Object()
				for _, c := range columns {
					cell, _ := fields.Get(c)
					tr.AppendChild(element(atom.Td, nil, text(cell.Text())))
				}
			default:
				tr.AppendChild(element(atom.Td, nil, text(row.Text())))
			}
			body.AppendChild(tr)
		}
		table.AppendChild(body)
	}
	appendAll(table, children)
	return table
}

func linkList(props uischema.Props) *html.Node {
	v, ok := props.Get("items")
	if !ok {
		return nil
	}
	items, err := v.Array()
	if err != nil || len(items) == 0 {
		return nil
	}
	ul := element(atom.Ul, nil)
	for _, item := range items {
		label := item.Text()
		var href string
		if item.Kind() == uischema.KindObject {
			fields, _ := item.Object()
			label, _ = textProp(fields, "label")
			href, _ = textProp(fields, "href")
		}
		entry := text(label)
		if href != "" && !unsafeURL(href) {
			entry = element(atom.A, []html.Attribute{{Key: "href", Val: href}}, entry)
		}
		ul.AppendChild(element(atom.Li, nil, entry))
	}
	return ul
}

// content returns the rendered children, or the children prop as text when
// there are none.
func content(props uischema.Props, children []*html.Node) []*html.Node {
	if len(children) > 0 {
		return children
	}
	if v, ok := props.Get("children"); ok {
		switch v.Kind() {
		case uischema.KindString, uischema.KindNumber:
			return []*html.Node{text(v.Text())}
		}
	}
	return nil
}

func textProp(props uischema.Props, key string) (string, bool) {
	v, ok := props.Get(key)
	if !ok {
		return "", false
	}
	switch v.Kind() {
	case uischema.KindString, uischema.KindNumber:
		return v.Text(), true
	}
	return "", false
}

func element(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
	appendAll(n, children)
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func appendAll(parent *html.Node, children []*html.Node) {
	for _, c := range children {
		parent.AppendChild(c)
	}
}

func classAttr(class string) []html.Attribute {
	return []html.Attribute{{Key: "class", Val: class}}
}

// withClass prepends class to any class attribute the props carry.
func withClass(attrs []html.Attribute, class string) []html.Attribute {
	for i, a := range attrs {
		if a.Key == "class" {
			if a.Val != "" {
				attrs[i].Val = class + " " + a.Val
			} else {
				attrs[i].Val = class
			}
			return attrs
		}
	}
	return append([]html.Attribute{{Key: "class", Val: class}}, attrs...)
}
