// Package dataset loads grid networks into core.Graph and persists them.
//
// Document layout (JSON or YAML):
//
//	{
//	  "Nodes": {"14319": {"name": "substation"}, "14320": {}},
//	  "Edges": {"(14319, 14320)": {"kv": 110}}
//	}
//
// Edge keys accept "(a, b)", "[a, b]" and "a,b". A mapping cannot repeat a
// key, so parallel lines go into an optional sequence:
//
//	EdgeList:
//	  - {from: 14319, to: 14320, attrs: {circuit: 2}}
//
// Store keeps a network in SQLite (nodes and edges tables, JSON attributes)
// and LoadFile dispatches on the file extension.
package dataset
