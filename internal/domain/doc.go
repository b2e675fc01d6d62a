// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (key records, cipher buffers), the error kinds
// reported to the operator, and contracts (interfaces) only.
package domain
