// Package token defines the tag events produced by the lexer.
// Invariants:
//   - A self-closing tag arrives as StartTag followed by an EndTag with an
//     empty Span at the end of the start tag.
//   - Whitespace-only text, comments, processing instructions and
//     directives never appear in the stream.
//   - Attribute values are already unescaped.
//   - After EOF the lexer keeps returning EOF.
package token
