package xmlutils

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/xmlpath.v2"
)

// ParseXML parses an XML document and returns its root node
func ParseXML(r io.Reader) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	return root, nil
}

// Exists reports whether xpath matches anything under node.
func Exists(node *xmlpath.Node, xpath string) (bool, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return false, fmt.Errorf("failed to compile XPath: %w", err)
	}
	return path.Exists(node), nil
}

// SelectNodes returns every node matched by xpath, in document order.
func SelectNodes(node *xmlpath.Node, xpath string) ([]*xmlpath.Node, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var nodes []*xmlpath.Node
	iter := path.Iter(node)
	for iter.Next() {
		nodes = append(nodes, iter.Node())
	}
	return nodes, nil
}

// ExtractFromXML extracts the text of every node matched by xpath
func ExtractFromXML(node *xmlpath.Node, xpath string) ([]string, error) {
	nodes, err := SelectNodes(node, xpath)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(nodes))
	for _, n := range nodes {
		values = append(values, n.String())
	}
	return values, nil
}

// FirstText returns the cleaned text of the first match of xpath, or "" when
// nothing matches.
func FirstText(node *xmlpath.Node, xpath string) (string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return "", fmt.Errorf("failed to compile XPath: %w", err)
	}
	value, ok := path.String(node)
	if !ok {
		return "", nil
	}
	return CleanText(value), nil
}

var noisePrefixes = []string{
	"Remittance Info: ",
	"Remittance Information: ",
	"Additional Entry Info: ",
	"Additional Transaction Info: ",
	"Details: ",
}

// CleanText collapses whitespace and strips bank boilerplate prefixes from
// XML text content.
func CleanText(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	for _, prefix := range noisePrefixes {
		if strings.HasPrefix(text, prefix) {
			text = text[len(prefix):]
		}
	}
	return strings.TrimSpace(text)
}
