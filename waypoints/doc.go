// Package waypoints reads and writes waypoint sets of planar curves.
//
// Two formats are supported. The raw format is a flat sequence of records,
// each holding the breakpoint and the coordinates of one waypoint as three
// little-endian IEEE 754 doubles, in that order. It carries no header, so its
// size is always a multiple of [RecordSize]. The snapshot format describes
// any curve of package planar and is msgpack encoded, compressed with zstd.
package waypoints
