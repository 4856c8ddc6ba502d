// SPDX-License-Identifier: MIT

// Package sfa implements the Symbolic Fourier Approximation transform used
// by the BOSS classifier: real-valued series in, bags of discrete words out.
//
// 🚀 Pipeline
//
//	series ──disjoint windows──► DFT ──round/sort──► Breakpoints   (learned once, MCB)
//	series ──sliding windows───► MFT ──quantise────► []Word ──► Bag (numerosity reduced)
//
// ✨ Pieces
//   - Params:      word length, alphabet size, window length, normalise flag.
//   - Transform:   owns one configuration; DFT, MFT, Breakpoints, Word(s).
//   - Breakpoints: per-letter equi-depth thresholds, last column +Inf.
//   - Word:        2 bits per symbol packed in a uint32; Shorten truncates
//     to a prefix without touching the Fourier transform.
//   - Bag:         word histogram plus class label; consecutive duplicates
//     are skipped while folding (numerosity reduction).
//
// The moving transform updates every coefficient with one complex
// multiplication per step and maintains running sums for the per-window
// mean and standard deviation, so a series of length n costs O(n·l)
// instead of O(n·w·l).
//
// Transform is not safe for concurrent use: it reuses FFT work buffers.
package sfa
