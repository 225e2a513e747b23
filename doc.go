// Package signhands animates a pair of 3D hands performing sign-language
// gestures from a stream of gloss tokens.
//
// The package is renderer-agnostic: it owns the joint trees, the pose and
// gesture tables, and the playback queue, and hands back joint transforms
// each frame. Drawing them is the host's job (see examples/signer for an
// [Ebitengine] host).
//
// # Quick start
//
//	root := signhands.NewJoint("avatar", signhands.Vec3{})
//	avatar, err := signhands.NewAvatar(root, signhands.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	avatar.Enqueue("HELLO", "CHAR_A", "CHAR_B")
//
//	// once per frame:
//	frame := avatar.Update(clockSeconds, time.Now())
//	draw(frame.Right, frame.Left, frame.Caption)
//
// # Tokens
//
// A token is either an uppercase vocabulary word ("HELLO", "THANK-YOU") or a
// fingerspelling directive of the form CHAR_<c>. Words are matched
// case-sensitively against the gesture catalog; unknown words still animate
// through a deterministic fallback. [Tokenize] turns plain English text into
// tokens for hosts that have no gloss producer of their own.
//
// # Clocks
//
// Two clocks drive an avatar. Gesture waveforms read a monotonic elapsed
// time in seconds so they stay continuous; playback slots are measured on
// the wall clock. Both are passed to [Avatar.Update] explicitly, which is
// how the tests feed synthetic time.
//
// # Concurrency
//
// An avatar is single-threaded. Enqueue and Update must be called from the
// same goroutine (the host's frame loop). The feed package shows how to hand
// tokens from a network goroutine to the frame loop.
//
// [Ebitengine]: https://ebitengine.org
package signhands
