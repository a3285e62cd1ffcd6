// Package dump streams pages out of MediaWiki XML dumps.
//
// The parser walks start and end tag events and never builds the
// document tree, so memory use is bounded by the largest single page
// rather than by the dump. Only the two-level export schema is
// understood:
//
//	<mediawiki>
//	  <page>
//	    <title/> <ns/> <id/>
//	    <revision> <id/> ... <text/> </revision>
//	  </page>
//	</mediawiki>
//
// Plain, bzip2 (".bz2") and gzip (".gz") dumps are supported.
package dump
