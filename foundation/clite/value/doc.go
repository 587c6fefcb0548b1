// Package value implements the scalar values of the clite language:
// int, float, bool and char, the promotion rule shared by all operator
// families and the rendering used by print.
package value
