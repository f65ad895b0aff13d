// Package builder synthesizes random inputs for the CSP pipeline: uniform random
// instances over a relation language, Erdős–Rényi graphs for the graph-backed
// problems and random 2-CNF formulas for max-2-SAT.
//
// Configuration follows the functional-options pattern:
//
//   - BuilderOption:  a function that mutates builderConfig before use.
//   - WithSeed / WithRand: the random source. Every generator requires one and
//     fails with ErrNeedRandSource otherwise; nothing falls back to a global RNG.
//   - WithIDScheme and its shorthands (WithDefaultIDs, WithExcelColumnIDs,
//     WithPrefixIDs): vertex labels for generated graphs.
//
// Guarantees:
//
//   - Determinism: a fixed seed and fixed arguments yield identical output.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     generators themselves return sentinel errors and never panic.
//   - Documented complexity per generator.
package builder
