// Package exprtree parses integer arithmetic into binary expression trees.
//
// The accepted grammar, from lowest to highest precedence, is:
//
//     Expr    = Term { ( "+" | "-" ) Term } .
//     Term    = Power { ( "*" | "/" | "%" ) Power } .
//     Power   = Primary { "^" Primary } .
//     Primary = "(" Expr ")" | Number .
//
// Every level is left-associative, including "^", so "2 ^ 3 ^ 2" is "(2 ^ 3) ^ 2".
//
// A parsed Tree can be printed back with minimal parentheses (Tree.String), rendered as a Mermaid
// flowchart (Tree.Diagram), or evaluated to an int64 (Tree.Eval).
//
// Here's an example:
//
//     parser := exprtree.MustNew()
//     tree, err := parser.ParseString("3 + 4 * 2")
//     if err != nil {
//         return err
//     }
//     value, err := tree.Eval() // 11
package exprtree
