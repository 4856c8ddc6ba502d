// Package dataset is the labeled time-series view consumed by the sfa and
// boss packages.
//
// A Dataset is an ordered sequence of instances. Every instance carries one
// real-valued series per channel plus a nominal class index. Univariate
// datasets have exactly one channel; multivariate datasets model the
// "one relational attribute per channel" layout and can be split into one
// flat univariate Dataset per channel with SplitChannels.
//
// Attribute model:
//
//	univariate:   t0 t1 ... t(L-1) class   → NumAttributes = L+1
//	multivariate: ch0 ch1 ... ch(C-1) class → NumAttributes = C+1
//
// ClassIndex records where the class attribute sits; every consumer in this
// module requires it to be the last attribute and Validate enforces that.
package dataset
