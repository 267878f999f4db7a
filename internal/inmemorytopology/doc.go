// Package inmemorytopology provides a thread-safe, in-memory implementation
// of the topologystore.Store interface. Circuits are small, so the whole
// multigraph lives in a few slices and a name index.
package inmemorytopology
