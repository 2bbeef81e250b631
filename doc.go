// Package cssel builds CSS selector strings from immutable, reusable
// values — fluent fragment chains, combinator composition, and one pure
// stringify for all of it.
//
// 🚀 What is cssel?
//
//	A small, deterministic library that brings together:
//		• Fragment chains: element, id, class, attribute, pseudo-class, pseudo-element
//		• Construction-time validation: canonical fragment order & singleton rules
//		• Combinators: ' ', '+', '~', '>' joining whole selectors
//		• Persistent values: every call returns a NEW selector, bases stay reusable
//		• Declarative manifests: describe named selectors in YAML, render via CLI
//
// ✨ Why choose cssel?
//
//   - Fail-fast – invalid chains are rejected at the exact call, never at render
//   - Rock-solid guarantees – immutable values, lock-free concurrent reads & extends
//   - Sentinel errors – branch with errors.Is, never match strings
//   - Structure only – selectors are composed, never parsed from text
//
// Under the hood, everything is organized under two subpackages plus a CLI:
//
//	selector/ — core Selector value, fragment constructors, Combine, String
//	manifest/ — YAML documents of named selectors, by-name reuse, filtering
//	cmd/cssel — render a manifest to text from the command line
//
// Quick example:
//
//	base, _ := selector.Element("div").ID("main")
//	box, _ := base.Class("container")
//	fmt.Println(box) // div#main.container
//
// Dive into the package docs for the full ordering contract, the combinator
// rendering rules, and the manifest schema.
//
//	go get github.com/katalvlaran/cssel
package cssel
