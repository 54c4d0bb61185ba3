// Package decision implements expressive-action arbitration.
//
// One Decide call runs the full pipeline: sentiment extraction, self-feedback
// into the emotion store, candidate masking, utility scoring, and a stable
// top-1 pick. Self-feedback is applied before the candidate and scoring steps
// read the vector, so the system's own utterance perturbs the very decision
// that emits it. That ordering is a contract, not an accident.
package decision
