// Package transport delivers assembled GELF records to a collector.
//
// Two senders are provided: UDP with payload compression and chunked
// datagrams for records over the datagram cap, and TCP with null-terminated
// frames. Both are best effort by contract; the assembler upstream never
// retries, and neither does this package.
package transport
