// Package hcl_adapter is the HCL implementation of config.Loader.
//
// Any .hcl file may contain two kinds of top-level blocks:
//
//	operation "CX_gate" {
//	  description = "Controlled NOT"
//	  input  "ctl" { type = qubit }
//	  input  "tgt" { type = qubit }
//	  output "ctl" { type = qubit }
//	  output "tgt" { type = qubit }
//	}
//
//	circuit "bell" {
//	  input  "q0" { type = qubit }
//	  output "q0" { type = qubit }
//
//	  node "H" {
//	    op    = "H_gate"
//	    label = "H"
//	  }
//
//	  connect {
//	    from = input.q0
//	    to   = H.q
//	  }
//	}
//
// Port types are the bare keywords bit, u32 and qubit. In connections the
// roots `input` and `output` refer to the circuit's own ports, so no node may
// use those names.
package hcl_adapter
