// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo). This root package
// holds the sentinel errors and the field-level ValidationError that every
// layer above the domain reports failures through.
package domain
