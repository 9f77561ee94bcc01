package ffmpeg

import (
	"fmt"
	"strings"
)

// MainVideoLabel is the label of the primary input's video stream.
const MainVideoLabel = "[0:v]"

// FilterKind distinguishes chainable per-stream filters from filters that
// need explicit bracketed stream labels.
type FilterKind int

const (
	// Simple filters apply to exactly one stream and chain by comma-joining
	// into a -vf argument, no labels required.
	Simple FilterKind = iota
	// Complex filters consume or produce multiple streams, or must be
	// mapped explicitly to the output; they render into -filter_complex.
	Complex
)

// FilterNode is one entry in a filter chain. Nodes are owned exclusively
// by the chain that created them.
type FilterNode struct {
	Text    string
	Kind    FilterKind
	Inputs  []string
	Outputs []string
}

// FilterChain accumulates filter nodes in insertion order and allocates
// unique stream labels. A single counter is shared by every allocation so
// labels never collide within one chain's lifetime.
type FilterChain struct {
	nodes     []FilterNode
	nextLabel int
}

// NewFilterChain creates an empty filter chain.
func NewFilterChain() *FilterChain {
	return &FilterChain{}
}

// NextLabel allocates a fresh stream label. Labels are strictly increasing
// and never reused within this chain.
func (c *FilterChain) NextLabel() string {
	label := fmt.Sprintf("[v%d]", c.nextLabel)
	c.nextLabel++
	return label
}

// AddSimple appends a chainable filter. The node implicitly threads
// through the main video stream and carries no labels.
func (c *FilterChain) AddSimple(text string) {
	c.nodes = append(c.nodes, FilterNode{Text: text, Kind: Simple})
}

// AddComplex appends a labeled filter. When no output labels are given,
// one is allocated here so that rendering stays free of side effects.
// The allocated (or last declared) output label is returned.
func (c *FilterChain) AddComplex(text string, inputs, outputs []string) string {
	if len(outputs) == 0 {
		outputs = []string{c.NextLabel()}
	}
	c.nodes = append(c.nodes, FilterNode{
		Text:    text,
		Kind:    Complex,
		Inputs:  inputs,
		Outputs: outputs,
	})
	return outputs[len(outputs)-1]
}

// RenderSimple returns the comma-joined text of all Simple nodes in
// insertion order. ok is false when the chain holds no Simple node.
func (c *FilterChain) RenderSimple() (text string, ok bool) {
	var parts []string
	for _, n := range c.nodes {
		if n.Kind == Simple {
			parts = append(parts, n.Text)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ","), true
}

// RenderComplex returns the -filter_complex graph text, or ok=false when
// no Complex node exists. Each fragment is synthesized as
// <input-labels><filter-text><output-labels>; nodes without declared
// inputs consume the running main-stream label, so successive filters
// thread into each other. Rendering is idempotent: labels were allocated
// when the nodes were added.
func (c *FilterChain) RenderComplex() (text string, ok bool) {
	var frags []string
	current := MainVideoLabel
	for _, n := range c.nodes {
		if n.Kind != Complex {
			continue
		}
		in := strings.Join(n.Inputs, "")
		if in == "" {
			in = current
		}
		out := strings.Join(n.Outputs, "")
		frags = append(frags, in+n.Text+out)
		if len(n.Outputs) > 0 {
			current = n.Outputs[len(n.Outputs)-1]
		}
	}
	if len(frags) == 0 {
		return "", false
	}
	return strings.Join(frags, ";"), true
}

// FinalOutputLabel returns the label that must be mapped to the output:
// the last Complex node's output, or the main video stream when the graph
// holds no Complex node.
func (c *FilterChain) FinalOutputLabel() string {
	label := MainVideoLabel
	for _, n := range c.nodes {
		if n.Kind == Complex && len(n.Outputs) > 0 {
			label = n.Outputs[len(n.Outputs)-1]
		}
	}
	return label
}

// HasComplex reports whether any Complex node was added.
func (c *FilterChain) HasComplex() bool {
	for _, n := range c.nodes {
		if n.Kind == Complex {
			return true
		}
	}
	return false
}

// Len returns the number of nodes in the chain.
func (c *FilterChain) Len() int {
	return len(c.nodes)
}

// Reset clears the node list and restores the label counter to its
// initial value.
func (c *FilterChain) Reset() {
	c.nodes = nil
	c.nextLabel = 0
}
