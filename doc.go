// Package gollrb implement an in-memory ordered map of key,value pairs
// along with tools and libraries to measure and verify it.
//
// api:
//
// Interfaces shared by every ordered container, stock
// comparators and error values.
//
// llrb:
//
// A version of Left Leaning Red Black tree for sorting and retrieving
// {key,value} entries. Keys and values can be of any type, sort order
// is defined by a comparator supplied while creating the tree.
//
// dict:
//
// Golang map with a comparator, implements the same interface as llrb.
// Meant as reference for testing and as baseline for benchmarks.
//
// lib:
//
// Convinience functions that can be used by other packages. Package shall
// not import packages other than golang's standard packages.
//
// tools/llrb:
//
// Command line tool to load, measure and validate llrb against dict and
// google's btree.
package gollrb
