// Package format packs the per-kind attributes into a single format word.
//
// A word has three fields:
//
//	bits  0-1   slot count (0, 1 or 2)
//	bits  2-11  bit width (a power of two, 0 for object and void)
//	bits 12+    sign class (Signed < Unsigned < Floating)
//
// Signed is negative, so ordinary integer comparison on words answers the
// class predicates: every signed word is below every unsigned word, and
// every floating word is above both.
//
// This package is internal to the wrapper catalog.
package format
