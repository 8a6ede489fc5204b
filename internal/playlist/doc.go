// Package playlist defines the common in-memory representation of a channel
// entry shared by every stage of the build pipeline.
//
// A [Record] is produced once per parsed source entry and is not mutated
// afterwards: the merge, arrange, and encode stages only select, reorder,
// and render records. Known EXTINF attributes (tvg-id, tvg-logo,
// group-title) are lifted into typed fields; anything else found on a
// metadata line is preserved verbatim in [Record.Extra] so unknown tags
// survive a round trip through the tool.
package playlist
