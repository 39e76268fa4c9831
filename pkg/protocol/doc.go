// Package protocol implements the binary wire protocol of the live preview
// server.
//
// The server sends the initial tree as a Mount frame and every later render
// as a Patches frame carrying the patch script. The client sends Event
// frames addressed by child index path. Either side may send an Error frame.
//
// # Wire Format
//
// All messages are framed with a 6-byte header:
//
//	┌─────────────┬──────────────┬───────────────────────────────┐
//	│ Frame Type  │ Flags        │ Payload Length                │
//	│ (1 byte)    │ (1 byte)     │ (4 bytes, big-endian)         │
//	└─────────────┴──────────────┴───────────────────────────────┘
//
// # Frame Types
//
//   - FrameMount (0x01): sequence number + tree
//   - FramePatches (0x02): sequence number + patch script
//   - FrameEvent (0x03): index path + event name + value
//   - FrameError (0x04): error code + message
//
// # Encoding
//
//   - Varint: compact encoding for small integers (protobuf-style)
//   - ZigZag: signed integers encoded as unsigned varints
//   - Length-prefixed: strings prefixed with varint length
//   - Big-endian: fixed-width integers
//
// # Limits
//
// Decoding enforces allocation limits (DefaultMaxAllocation,
// MaxCollectionCount) and nesting limits (MaxNodeDepth, MaxPatchDepth) so
// hostile input cannot exhaust memory or the stack.
package protocol
