// Package forms is the form-schema type system behind dculus forms: the
// closed set of field variants, the structured issue model shared with the
// validation schema factory, and the default-value / submission-transform
// engine.
//
// The package is a pure, synchronous function library. No operation performs
// I/O, retains state across calls or mutates its inputs unless documented
// (SanitizeContent), so every entry point may be called concurrently without
// coordination.
//
// Subpackages: validation holds the per-kind validation schemas, codec the
// lossless record codec, jsonschema the submission-payload schema export and
// i18n the message catalog.
package forms
