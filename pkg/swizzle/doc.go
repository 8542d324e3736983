// Package swizzle enumerates swizzle sequences: every ordered arrangement,
// repetition allowed, of a small set of component symbols (R, G, B, A or
// X, Y, Z, W) up to a maximum length.
//
// Enumeration yields sequences depth-first in symbol order, so for the
// symbols "RG" and a maximum length of 2 the discovery order is
// R, RR, RG, G, GR, GG. SortByLength regroups the result shortest first while
// keeping that order inside each length. The total number of sequences is
// Count(len(symbols), maxLength), which grows exponentially.
package swizzle
