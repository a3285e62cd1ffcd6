// Package extractors provides the TextExtractor implementations that turn
// raw wikitext into plain text, and the factory that selects one for a run.
//
// Extractors are registered with the Factory at startup.
package extractors
