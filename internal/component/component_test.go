package component

import (
	"testing"

	"board-cli/internal/dom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const markup = `<template id="t"><section><h2></h2></section></template>
<template id="empty">  </template>
<div id="app"><p id="marker"></p></div>`

func TestAttach_PositionAndID(t *testing.T) {
	doc, err := dom.ParseString(markup)
	require.NoError(t, err)

	end, err := Attach(doc, Spec{TemplateID: "t", HostID: "app", NewElementID: "last"})
	require.NoError(t, err)
	start, err := Attach(doc, Spec{TemplateID: "t", HostID: "app", InsertAtStart: true, NewElementID: "first"})
	require.NoError(t, err)
	anon, err := Attach(doc, Spec{TemplateID: "t", HostID: "app"})
	require.NoError(t, err)

	kids := dom.Children(start.Host)
	require.Len(t, kids, 4)
	assert.Same(t, start.Element, kids[0])
	assert.Equal(t, "marker", dom.ID(kids[1]))
	assert.Same(t, end.Element, kids[2])
	assert.Same(t, anon.Element, kids[3])
	assert.Equal(t, "section", anon.Element.Data)
	assert.Empty(t, dom.ID(anon.Element))

	h2, err := start.Find("h2")
	require.NoError(t, err)
	assert.Equal(t, "h2", h2.Data)
}

func TestAttach_Errors(t *testing.T) {
	doc, err := dom.ParseString(markup)
	require.NoError(t, err)

	_, err = Attach(doc, Spec{TemplateID: "missing", HostID: "app"})
	assert.ErrorIs(t, err, dom.ErrNotFound)

	_, err = Attach(doc, Spec{TemplateID: "t", HostID: "missing"})
	assert.ErrorIs(t, err, dom.ErrNotFound)

	_, err = Attach(doc, Spec{TemplateID: "empty", HostID: "app"})
	assert.ErrorIs(t, err, dom.ErrNotFound)
}

func TestOn_RegistersOnRootElement(t *testing.T) {
	doc, err := dom.ParseString(markup)
	require.NoError(t, err)
	b, err := Attach(doc, Spec{TemplateID: "t", HostID: "app"})
	require.NoError(t, err)

	called := 0
	b.On(dom.EventDrop, func(*dom.Event) { called++ })
	h2, err := b.Find("h2")
	require.NoError(t, err)
	doc.Dispatch(h2, dom.NewEvent(dom.EventDrop))
	assert.Equal(t, 1, called)
}
