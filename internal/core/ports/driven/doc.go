// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DumpOpener / PageSource: Streams main-namespace pages out of a dump
//   - CorpusCreator / RecordWriter: Appends converted pages to the corpus
//   - TextExtractor: Turns wikitext into plain text
//   - ExtractorFactory: Builds the extractor selected by the settings
//
// # Optional Interfaces
//
// These can be nil - the converter degrades gracefully:
//
//   - ProgressSink: Receives completion percentages
//   - RunStore: Records conversion runs
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
