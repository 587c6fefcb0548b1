// Package interp parses and executes a clite token stream in a single pass.
//
// Grammar:
//
//	program      -> type main ( ) { declarations statements }
//	declarations -> (type id (, id)* ;)*
//	statement    -> assignment | print | if | while | return | block
//	expression   -> conjunction (|| conjunction)*
//	conjunction  -> equality (&& equality)*
//	equality     -> relation (equOp relation)?
//	relation     -> addition (relOp addition)?
//	addition     -> term (addOp term)*
//	term         -> factor (multOp factor)*
//	factor       -> id | literal | ( expression )
//
// Every production receives an exec flag. With exec unset the tokens are
// consumed and result types are computed, but nothing is printed or
// stored. Untaken if branches, the closing pass over a while body and dry
// runs use this mode.
package interp
