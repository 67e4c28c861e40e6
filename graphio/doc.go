// Package graphio reads and writes the plain-text formats used around the
// shortest-path engines: the edge-list graph format, the potential/reweighted
// exchange format passed between pipeline stages, and the human-readable
// path reports. It also generates seeded random graphs.
//
// Graph format (whitespace separated, line breaks are not significant):
//
//	V E
//	from to weight   (E times)
//
// Exchange format:
//
//	Point weight
//	V E
//	vertex potential (V times)
//	New Edge weight
//	V E
//	from to weight   (E times, reweighted, virtual source omitted)
//
// All readers wrap core.ErrInvalidInput so callers can test one sentinel.
package graphio
