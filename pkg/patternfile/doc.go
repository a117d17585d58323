// Package patternfile loads structural patterns from declarative JSON or
// YAML documents.
//
// A document carries one pattern under the "pattern" key. Scalars are
// literal patterns, arrays are fixed tuples, and objects are keyed
// patterns — unless the object is an operator node, recognized by its
// single "$"-prefixed key:
//
//	pattern:
//	  status: { $or: [active, trial] }
//	  user:
//	    name: { $select: userName }
//	    age: { $optional: { $gte: 18 } }
//	  tags: { $array: { $type: string } }
//
// Operators cover the full matcher library ($any, $not, $optional, $or,
// $and, $array, $set, $map, $select) plus refinements ($type, $regex,
// $glob, $expr, $uuid, $jsonpath, $gt, $gte, $lt, $lte, $between,
// $startsWith, $endsWith, $contains, $minLength, $maxLength).
//
// Documents are validated against an embedded JSON Schema before
// compilation, so malformed operator arguments are reported with a
// location rather than compiling into a pattern that never matches.
package patternfile
