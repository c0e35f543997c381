// Package mapfile loads city maps from HCL files.
//
// A map file holds a single map block:
//
//	map {
//	  rows = [
//	    "E  #      ",
//	    "## # ###  ",
//	    "       #S ",
//	  ]
//	}
//
// Rows are the usual single-character markers ('#' blocked, ' ' free,
// 'E' departure, 'S' destination). The decode context exposes the marker
// characters as the variables free, blocked, start and goal, so rows may be
// assembled from expressions:
//
//	map {
//	  rows = [
//	    "${start} ${blocked}",
//	    "  ${goal}",
//	  ]
//	}
//
// Errors: ErrDecode wraps HCL parse or decode diagnostics; grid shape and
// marker problems surface as the citygrid sentinels.
package mapfile
