// Package dag tracks node-to-node dependencies of a circuit independently of
// ports and types. It answers the structural questions the port graph itself
// does not: whether the wiring contains a feedback loop, and how deep each
// node sits behind the circuit inputs.
package dag
