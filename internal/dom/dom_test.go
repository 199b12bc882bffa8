package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const testMarkup = `<!DOCTYPE html>
<html><body>
<template id="card"><li class="card"><h2></h2><p>body</p></li></template>
<div id="host"><span id="existing"></span></div>
</body></html>`

func parseTest(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseString(testMarkup)
	require.NoError(t, err)
	return doc
}

func TestTemplateImportAndInsert(t *testing.T) {
	doc := parseTest(t)
	tmpl, err := doc.Template("card")
	require.NoError(t, err)
	host, err := doc.Element("host")
	require.NoError(t, err)

	first := FirstElementChild(ImportNode(tmpl))
	require.NotNil(t, first)
	SetID(first, "c1")
	InsertAdjacent(host, first, AfterBegin)

	second := FirstElementChild(ImportNode(tmpl))
	SetID(second, "c2")
	InsertAdjacent(host, second, BeforeEnd)

	var ids []string
	for _, c := range Children(host) {
		ids = append(ids, ID(c))
	}
	assert.Equal(t, []string{"c1", "existing", "c2"}, ids)

	// The template itself is untouched by imports.
	orig := FirstElementChild(tmpl)
	assert.Empty(t, ID(orig))
	assert.Same(t, first, doc.GetElementByID("c1"))
}

func TestMissingElementsAreNotFound(t *testing.T) {
	doc := parseTest(t)

	_, err := doc.Template("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	// host is an element but not a template.
	_, err = doc.Template("host")
	var nf NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "template", nf.Kind)

	_, err = doc.Element("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, doc.GetElementByID(""))
}

func TestQuerySelectorAndText(t *testing.T) {
	doc := parseTest(t)
	tmpl, err := doc.Template("card")
	require.NoError(t, err)
	li := FirstElementChild(ImportNode(tmpl))

	h2, err := Find(li, "h2")
	require.NoError(t, err)
	doc.SetTextContent(h2, "Title")
	assert.Equal(t, "Titlebody", TextContent(li))

	none, err := QuerySelector(li, "ul")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = Find(li, "ul")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = QuerySelector(li, "[[")
	assert.Error(t, err)
}

func TestClassList(t *testing.T) {
	n := &html.Node{Type: html.ElementNode, Data: "ul"}
	AddClass(n, "droppable")
	AddClass(n, "droppable")
	AddClass(n, "wide")
	assert.Equal(t, []string{"droppable", "wide"}, Classes(n))

	RemoveClass(n, "droppable")
	assert.False(t, HasClass(n, "droppable"))
	RemoveClass(n, "wide")
	_, ok := Attr(n, "class")
	assert.False(t, ok)
}

func TestDispatchBubblesInRegistrationOrder(t *testing.T) {
	doc := parseTest(t)
	host := doc.GetElementByID("host")
	span := doc.GetElementByID("existing")

	var got []string
	doc.AddEventListener(span, EventDrop, func(ev *Event) { got = append(got, "span") })
	doc.AddEventListener(host, EventDrop, func(ev *Event) {
		got = append(got, "host-1")
		assert.Same(t, span, ev.Target)
		assert.Same(t, host, ev.CurrentTarget)
		ev.PreventDefault()
	})
	doc.AddEventListener(host, EventDrop, func(ev *Event) { got = append(got, "host-2") })
	doc.AddEventListener(host, EventDragOver, func(ev *Event) { got = append(got, "wrong type") })

	prevented := doc.Dispatch(span, NewEvent(EventDrop))
	assert.True(t, prevented)
	assert.Equal(t, []string{"span", "host-1", "host-2"}, got)
}

func TestStopPropagation(t *testing.T) {
	doc := parseTest(t)
	host := doc.GetElementByID("host")
	span := doc.GetElementByID("existing")

	hostCalled := false
	doc.AddEventListener(span, EventSubmit, func(ev *Event) { ev.StopPropagation() })
	doc.AddEventListener(host, EventSubmit, func(ev *Event) { hostCalled = true })

	assert.False(t, doc.Dispatch(span, NewEvent(EventSubmit)))
	assert.False(t, hostCalled)
}

func TestClearChildrenThenPrune(t *testing.T) {
	doc := parseTest(t)
	host := doc.GetElementByID("host")
	span := doc.GetElementByID("existing")
	ended := false
	doc.AddEventListener(span, EventDragEnd, func(ev *Event) { ended = true })
	doc.AddEventListener(host, EventDrop, func(ev *Event) {})

	doc.ClearChildren(host)
	assert.Empty(t, Children(host))

	// Detached nodes still receive events until pruned.
	doc.Dispatch(span, NewEvent(EventDragEnd))
	assert.True(t, ended)

	assert.Equal(t, 1, doc.Prune())
	assert.Len(t, doc.listeners, 1)
	assert.Equal(t, 0, doc.Prune())
}

func TestDataTransfer(t *testing.T) {
	dt := NewDataTransfer()
	dt.SetData("text/plain", "a")
	dt.SetData("text/uri-list", "b")
	dt.SetData("text/plain", "c")
	assert.Equal(t, []string{"text/plain", "text/uri-list"}, dt.Types())
	assert.Equal(t, "c", dt.GetData("text/plain"))
	assert.Equal(t, "", dt.GetData("application/json"))

	ev := NewDragEvent(EventDragOver, nil)
	require.NotNil(t, ev.DataTransfer)
	assert.Empty(t, ev.DataTransfer.Types())
}
