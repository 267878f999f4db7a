/*
Package builder turns a circuit definition from the config model into a typed
port graph.

Construction is a two-phase process:

 1. Node Creation: every declared node is added to the graph in declaration
    order. The registry is consulted here, so an unknown operation fails
    before any connection is looked at.

 2. Connection Routing: each connection is routed to the builder operation
    matching its endpoints. A connection from `input.<port>` becomes a
    boundary input edge, one into `output.<port>` a boundary output edge, and
    everything else an ordinary edge. The graph validates ports and types.

The first failure aborts the build. Its error names the circuit and, for
connections, the connection as written along with its source position.
*/
package builder
