// Package elim performs one step of block elimination on a symmetric matrix.
//
// For an index split F (eliminated) and C (kept) of L,
//
//	Sc = L_CC − L_CF·L_FF⁻¹·L_FC
//
// and L[F∪C, F∪C] = BT·W·B in F-then-C layout with
//
//	BT = [[I, 0], [X, I]],  W = [[L_FF, 0], [0, Sc]],  B = BTᵗ,  X = L_CF·L_FF⁻¹.
//
// The inverse of L_FF is delegated to an oracle.Inverter; a singular or
// numerically singular pivot block fails with ErrSingularBlock and is not
// retried. Inputs are never modified.
package elim
