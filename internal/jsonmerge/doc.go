// Package jsonmerge implements the field-by-field JSON merge used when
// syncing configuration files between a project and its template. The
// merge is recursive and right-biased: values from the source side win,
// keys present only in the target survive, and arrays are replaced
// wholesale rather than merged element-wise.
package jsonmerge
