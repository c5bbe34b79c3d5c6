// Package rng implements the RNG Registry: a named collection of
// independent pseudo-random streams (ctrl, proj, haar, born, and
// optionally state_init) that give every trajectory byte-reproducible
// randomness.
//
// Design contract:
//   - Each named stream owns its own *rand.Rand seeded independently; a
//     draw from one name never perturbs another name's sequence.
//   - Registries are built once, deterministically, from either a full
//     per-name seed map (NewRegistry) or a single master seed that derives
//     per-name seeds deterministically (NewRegistryFromSeed), mirroring the
//     teacher's builder.WithSeed pattern (rand.New(rand.NewSource(seed))).
//   - Streams are addressed by StreamName, a small closed set of accepted
//     values; constructing a registry with an unknown StreamName is
//     InvalidArgument, and drawing from any name the registry does not hold
//     is a caller bug (Internal).
package rng
