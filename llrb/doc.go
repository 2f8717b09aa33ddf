// Package llrb implement a self-balancing version of binary-tree, called,
// LLRB (Left Leaning Red Black).
//
//   * Index key, value of any type, ordered by a caller supplied
//     comparator, refer api.Compare.
//   * Each key shall be unique within the index sample-set.
//   * Insert, lookup and delete are O(log n), height of the tree is
//     bounded by "maxheight.factor" * log2(n+1).
//   * Entries can be iterated in sort order, using a visitor callback,
//     a range-over-func sequence or a pull iterator.
//
// An instance is not safe for concurrent use, reads and writes shall be
// serialized by the application.
package llrb
