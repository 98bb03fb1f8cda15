// Package types defines the Report produced by the analyzer. It is the
// canonical in-memory form of a demographic summary, shared by the printer,
// the exporters and the check rules so none of them depend on how the
// numbers were computed.
package types
