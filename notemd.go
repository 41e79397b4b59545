// Package notemd converts captured Notion pages into Markdown. It infers
// block semantics (headings, lists, quotes, code, links, emphasis) from a mix
// of structural markers and heuristic signals: CSS class fragments, inline
// style, and element visibility.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, trafilatura/, douceur/).
package notemd
