package dom

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is an element node. It shares its layout with html.Node, so an
// *Element and the *html.Node it wraps are the same object.
type Element html.Node

// New creates a detached element. An empty class or text is left unset,
// mirroring document.createElement followed by optional className and
// textContent assignments.
func New(tag, class, text string) *Element {
	el := &Element{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if class != "" {
		el.SetClassName(class)
	}
	if text != "" {
		el.SetText(text)
	}
	return el
}

func (e *Element) node() *html.Node {
	return (*html.Node)(e)
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.Data
}

// AttrValue returns the value of the named attribute, or "" if unset.
func (e *Element) AttrValue(key string) string {
	for _, a := range e.node().Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets the named attribute, replacing any previous value.
func (e *Element) SetAttr(key, val string) {
	n := e.node()
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes the named attribute if present.
func (e *Element) RemoveAttr(key string) {
	n := e.node()
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// ParentElement returns the parent element, or nil when detached.
func (e *Element) ParentElement() *Element {
	p := e.node().Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return (*Element)(p)
}

// Children returns the element children in order. Text nodes are skipped.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, (*Element)(c))
		}
	}
	return out
}

// AppendChild appends child as the last child of e. A child that is already
// attached elsewhere (or to e) is moved, like the DOM's appendChild.
func (e *Element) AppendChild(child *Element) {
	cn := child.node()
	if cn.Parent != nil {
		cn.Parent.RemoveChild(cn)
	}
	e.node().AppendChild(cn)
}

// Remove detaches e from its parent. It is a no-op for detached elements.
func (e *Element) Remove() {
	n := e.node()
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Clear removes every child node, the equivalent of innerHTML = "".
func (e *Element) Clear() {
	n := e.node()
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

// ReplaceChildren removes all current children and appends the given ones in
// order as a single operation. Elements passed in are re-parented, not copied;
// an element listed twice ends up at its last position.
func (e *Element) ReplaceChildren(children ...*Element) {
	e.Clear()
	for _, c := range children {
		e.AppendChild(c)
	}
}

// SetText replaces all children with a single text node. An empty string
// leaves the element without children.
func (e *Element) SetText(text string) {
	e.Clear()
	if text == "" {
		return
	}
	e.node().AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Text returns the concatenated text of all descendant text nodes.
func (e *Element) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(e.node())
	return b.String()
}

// ClassName returns the raw class attribute.
func (e *Element) ClassName() string {
	return e.AttrValue("class")
}

// SetClassName overwrites the class attribute.
func (e *Element) SetClassName(class string) {
	if class == "" {
		e.RemoveAttr("class")
		return
	}
	e.SetAttr("class", class)
}

// Classes returns the class list.
func (e *Element) Classes() []string {
	return strings.Fields(e.ClassName())
}

// HasClass reports whether class is in the class list.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds class to the class list if it is not already present.
func (e *Element) AddClass(class string) {
	if e.HasClass(class) {
		return
	}
	e.SetClassName(strings.Join(append(e.Classes(), class), " "))
}

// RemoveClass removes every occurrence of class from the class list.
func (e *Element) RemoveClass(class string) {
	classes := e.Classes()
	kept := classes[:0]
	for _, c := range classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	e.SetClassName(strings.Join(kept, " "))
}

// ToggleClass adds class when on is true and removes it otherwise.
func (e *Element) ToggleClass(class string, on bool) {
	if on {
		e.AddClass(class)
	} else {
		e.RemoveClass(class)
	}
}

// Find returns the first descendant (depth-first, document order) carrying
// class, or nil.
func (e *Element) Find(class string) *Element {
	for _, c := range e.Children() {
		if c.HasClass(class) {
			return c
		}
		if found := c.Find(class); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant carrying class in document order.
func (e *Element) FindAll(class string) []*Element {
	var out []*Element
	for _, c := range e.Children() {
		if c.HasClass(class) {
			out = append(out, c)
		}
		out = append(out, c.FindAll(class)...)
	}
	return out
}

// FindTag returns the first descendant with the given tag name, or nil.
func (e *Element) FindTag(tag string) *Element {
	for _, c := range e.Children() {
		if c.Data == tag {
			return c
		}
		if found := c.FindTag(tag); found != nil {
			return found
		}
	}
	return nil
}

// RenderHTML writes the element and its subtree as HTML.
func (e *Element) RenderHTML(w io.Writer) error {
	return html.Render(w, e.node())
}

// HTML returns the element and its subtree as an HTML string.
func (e *Element) HTML() string {
	var buf bytes.Buffer
	// writes to a bytes.Buffer only fail on allocation panic
	_ = e.RenderHTML(&buf)
	return buf.String()
}

// InnerHTML returns the HTML of the element's children.
func (e *Element) InnerHTML() string {
	var buf bytes.Buffer
	for c := e.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}
