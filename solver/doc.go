// Package solver implements Search<S>: the recursive minimax that
// decides, for a Board position, whether the side to move has a forced
// win, returning the winner and a minimal Pattern proof.
//
// Configuration follows a functional-options shape: a config struct with
// unexported defaults, a variadic Search call applying each Option in
// order. The optional deadline/depth-cap bounding mirrors a
// context-cancellation check at the top of a loop, generalised from a
// single iteration to every recursive search call.
package solver
