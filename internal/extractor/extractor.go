// Package extractor parses single-revision XML fragments into flat records.
package extractor

import (
	"strings"
	"unicode/utf8"

	"github.com/antchfx/xmlquery"

	"wikirev/internal/models"
)

// Extract parses one revision XML fragment into a record. It returns (nil, nil)
// when the fragment contains no revision element, and an error only when the
// XML itself is malformed. Every optional child element is read independently:
// a missing timestamp or comment never blocks extraction of the other fields.
func Extract(content string, includeText bool) (*models.RevisionRecord, error) {
	doc, err := xmlquery.Parse(strings.NewReader(content))
	if err != nil {
		return nil, err
	}

	revision := xmlquery.FindOne(doc, "//revision")
	if revision == nil {
		return nil, nil
	}

	record := &models.RevisionRecord{
		RevisionID: childText(revision, "id"),
		Timestamp:  childText(revision, "timestamp"),
		Comment:    childText(revision, "comment"),
	}

	// Prefer the contributor's display name, fall back to the IP address of
	// anonymous edits. Without a contributor element both stay absent.
	if contributor := revision.SelectElement("contributor"); contributor != nil {
		record.Username = childText(contributor, "username")
		if record.Username == nil {
			record.Username = childText(contributor, "ip")
		}

		record.UserID = childText(contributor, "id")
	}

	// The length column is always populated, even when the text itself is
	// discarded; a missing or empty text element counts as zero.
	textContent := ""
	if text := revision.SelectElement("text"); text != nil {
		textContent = text.InnerText()
	}

	record.TextLength = utf8.RuneCountInString(textContent)

	if includeText {
		record.Text = &textContent
	}

	return record, nil
}

// childText returns the text of a direct child element, or nil if the child is
// absent.
func childText(node *xmlquery.Node, name string) *string {
	child := node.SelectElement(name)
	if child == nil {
		return nil
	}

	text := child.InnerText()

	return &text
}
