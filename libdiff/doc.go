// Package libdiff computes line diffs between tree dumps.
package libdiff
