// Package adf builds and reads Atlassian Document Format (ADF) documents,
// the JSON rich-text representation Jira Cloud uses for comment bodies and
// issue descriptions.
package adf

import (
	"strings"
)

// Node is one ADF node. A document is a Node of type "doc" with Version 1.
type Node struct {
	Type    string         `json:"type"`
	Version int            `json:"version,omitempty"`
	Text    string         `json:"text,omitempty"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
	Content []Node         `json:"content,omitempty"`
}

// Mark is inline formatting applied to a text node.
type Mark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Node types produced or interpreted by this package.
const (
	TypeDoc       = "doc"
	TypeParagraph = "paragraph"
	TypeText      = "text"
	TypeHardBreak = "hardBreak"
	TypeMention   = "mention"
	TypeEmoji     = "emoji"
)

// TextDocument wraps text verbatim in a document holding a single paragraph.
func TextDocument(text string) Node {
	return Node{
		Type:    TypeDoc,
		Version: 1,
		Content: []Node{
			{
				Type:    TypeParagraph,
				Content: []Node{{Type: TypeText, Text: text}},
			},
		},
	}
}

// blockTypes end with a line break when rendered as plain text.
var blockTypes = map[string]bool{
	TypeParagraph:  true,
	"heading":      true,
	"codeBlock":    true,
	"blockquote":   true,
	"listItem":     true,
	"panel":        true,
	"rule":         true,
	"tableRow":     true,
	"expand":       true,
	"mediaSingle":  true,
	"decisionItem": true,
	"taskItem":     true,
}

// PlainText flattens a document into plain text. Block nodes are separated
// by newlines; formatting is dropped.
func PlainText(n Node) string {
	var sb strings.Builder
	writePlain(&sb, n)
	return strings.TrimRight(sb.String(), "\n")
}

func writePlain(sb *strings.Builder, n Node) {
	switch n.Type {
	case TypeText:
		sb.WriteString(n.Text)
		return
	case TypeHardBreak:
		sb.WriteString("\n")
		return
	case TypeMention, TypeEmoji:
		if s, ok := n.Attrs["text"].(string); ok && s != "" {
			sb.WriteString(s)
		} else if s, ok := n.Attrs["shortName"].(string); ok {
			sb.WriteString(s)
		}
		return
	}

	for _, child := range n.Content {
		writePlain(sb, child)
	}
	if blockTypes[n.Type] && !strings.HasSuffix(sb.String(), "\n") {
		sb.WriteString("\n")
	}
}
