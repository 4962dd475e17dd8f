// Package wide provides 4-lane SIMD-shaped numeric types used by the BVH
// traversal code.
//
// Go has no portable SIMD intrinsics, so F32x4 and Bool4 are fixed-size
// arrays with simple per-lane loops: the same "rely on the compiler to
// auto-vectorize a tight loop over a fixed-size array" approach used
// throughout this module's ambient numeric code. Traversal is written
// entirely against these two types, never against a platform intrinsic,
// so a future assembly-backed implementation can be dropped in without
// touching accel.
package wide
