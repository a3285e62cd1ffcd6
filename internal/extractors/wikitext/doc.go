// Package wikitext provides a TextExtractor that strips MediaWiki markup
// in-process. It drops comments, references, templates, tables and
// file or category links, keeps the visible text of links and headings,
// and decodes HTML entities.
package wikitext
