// Package oracle provides a brute-force bidirectional BFS reference for
// (distance, shortest-path-count) queries, used only to check the 2-hop
// index's query answers in tests — never on any production call path.
//
// Grounded on the original implementation's bi_BFS_Count: two frontiers
// grow in lockstep, always expanding whichever side currently holds fewer
// vertices; the moment a vertex on the growing side is also known to the
// other side, the pair's distance is recorded and its path count
// accumulated. The growing side's current level is drained completely
// before the search stops — meeting vertices discovered elsewhere in the
// same level still contribute to the count — but no further level is ever
// opened once a meeting has been found.
package oracle

import "errors"

// ErrSelfQuery is returned when s == t; use (0, 1) directly in that case.
var ErrSelfQuery = errors.New("oracle: s and t must differ")

const infDist uint32 = ^uint32(0)
