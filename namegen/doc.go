// Package namegen produces a lexicographically monotone sequence of
// unique node-name identifiers: A, B, ..., Z, AA, AB, ..., ZZ, AAA, ...
//
// Key features:
//   - Sequence.Next(): returns the next name in the series.
//   - Sequence.FastForwardPast(names): after a graph is loaded with
//     existing names, advances the generator until its next output
//     strictly exceeds the greatest existing name under (length,
//     lexicographic) order, matching the source's re-seed-on-load
//     behavior.
//
// Complexity: O(length) per Next call, where length is the current
// name's character count; amortized O(1) since length grows only
// logarithmically with the count of names produced.
package namegen
