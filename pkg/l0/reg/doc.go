// Package reg provides L0 register access to the sensor frontend.
package reg

// The frontend exposes a small register file and a 24-bit conversion
// result, reachable over two physical links:
//
//   - an addressed bus (I2C): the bus itself frames transactions, so a
//     command is just the command byte in the write phase;
//   - a raw byte stream (UART): the stream has no framing, so every
//     command is prefixed with a fixed sync byte and must be flushed
//     out before a response is read.
//
// Both links carry the same command byte: a 2-bit opcode in the low
// bits with the 6-bit register address shifted above it. Responses are
// fixed-size, big-endian.
//
// This package only encodes, frames and decodes bytes. It does not
// retry, does not interpret register contents, and does not recover a
// stream that lost framing; that is up to the caller and the transport.
//
// Producer: frontend firmware
// Consumer: host-side drivers and tools
