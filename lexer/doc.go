// Package lexer splits a single line of arithmetic into tokens and provides a one token lookahead
// over them.
//
// The primary interface is Lexer. LexString returns the only concrete implementation, and Upgrade
// wraps any Lexer in a PeekingLexer.
package lexer
