// Package crosser implements the pairs-of-inequalities engine described in
// spec §4.5: given a left and a right group of constraintstore keys, it
// visits every overlapping pair exactly once via an ascending bit-indexed
// scan, derives inequalities with inequality.Cross, and feeds them back into
// the store with Store.Add.
//
// The bit-indexed outer loop is the hot path of the whole engine: instead of
// the naive |lefts| x |rights| scan, it walks set bits in ascending order and
// only visits a (left, right) pair once, the first time their shared lowest
// unseen bit is reached. This keeps enumeration time proportional to actual
// overlap, not store size, which is what makes mineprop able to run
// cross_all_pairs every round without blowing up on larger boards.
package crosser
