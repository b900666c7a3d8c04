// Package hcl provides the concrete HCL implementation of the settings Loader
// defined in the `config` package. It is responsible for parsing the settings
// file, decoding it with gohcl, and converting cty values into the settings
// model.
//
// A settings file looks like:
//
//	separator = "|"
//	encoding  = "latin-1"
//	courses   = ["maths", "info"]
//
//	profiles = {
//	  "1" = "SESI"
//	  "2" = "PEIP"
//	}
//
//	mention "Ajourné" { below = 10 }
//	mention "Admis" {}
//
// Every attribute is optional. Mention blocks replace the stock band table in
// declaration order; only the last one may omit `below`.
package hcl
