// Package ring implements multi-probe consistent hashing.
//
// Nodes occupy single positions on a circular 64-bit keyspace; there are no
// virtual nodes. A key is hashed to several candidate positions via double
// hashing, and the candidate landing closest (clockwise) to an occupied
// position selects the owner. Because a probe's distance to its owner does
// not depend on how much keyspace that owner controls, the minimum-of-many
// selection keeps load even while membership changes remap only the keys
// adjacent to the change. The package also provides the wrapping-interval
// algebra (KeyRange) used to compute the spans a node hands off during
// rebalancing.
package ring
