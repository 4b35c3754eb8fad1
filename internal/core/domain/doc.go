// Package domain contains the core business entities and rules for the
// poultry assistant. It has no dependencies on adapters or external
// services; everything here is plain data and pure logic.
package domain
