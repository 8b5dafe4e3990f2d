// Package rules defines the built-in metadata rules. Each rule registers
// itself with the lint registry from init(); import this package for its
// side effects to make the rules available:
//
//	import _ "github.com/sparkbrains-DE/dbt-vc/pkg/lint/rules"
//
// Rules are independent: a single model or column can trigger several of
// them, and no rule suppresses another.
package rules
