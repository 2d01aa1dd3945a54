package ui

import "petpal/internal/pet"

// AnimationType represents the type of action animation
type AnimationType int

const (
	AnimNone AnimationType = iota
	AnimFeed
	AnimPlay
	AnimSleep
)

// Animation holds the current animation state. It advances on game ticks so
// it never holds up input.
type Animation struct {
	Type  AnimationType
	Frame int
	ticks int
}

// AnimationFrameTicks is how many game ticks each frame is shown for
const AnimationFrameTicks = 12

// AnimationFrames contains ASCII art frames for each animation type
var AnimationFrames = map[AnimationType][]string{
	AnimFeed: {
		`
  🍖
    \
     (=^.^=)
`,
		`
    🍖
     (=^o^=)
`,
		`
     (=^.^=)
     *nom*
`,
		`
     (=^v^=)
    *munch*
`,
	},
	AnimPlay: {
		`
 🎾          (=^.^=)
`,
		`
      🎾     (=^o^=)
`,
		`
          🎾 (=^.^=)
`,
		`
      🎾     (=^v^=)
            *boing*
`,
		`
 🎾          (=^.^=)
            *catch!*
`,
	},
	AnimSleep: {
		`
     (=^.^=)
`,
		`
     (=-.-=)
        z
`,
		`
     (=-.-=)
        z
         Z
`,
		`
     (=-.-=)
        z
         Z
          Z
`,
	},
}

// AnimationFor maps a pet action to its animation.
func AnimationFor(action pet.Action) AnimationType {
	switch action {
	case pet.ActionFed:
		return AnimFeed
	case pet.ActionPlayed:
		return AnimPlay
	case pet.ActionSlept:
		return AnimSleep
	default:
		return AnimNone
	}
}

// NewAnimation starts an animation at its first frame.
func NewAnimation(animType AnimationType) Animation {
	return Animation{Type: animType}
}

// Advance moves the animation on by one game tick. A finished animation
// resets to AnimNone.
func (a *Animation) Advance() {
	if a.Type == AnimNone {
		return
	}
	a.ticks++
	a.Frame = a.ticks / AnimationFrameTicks
	if IsAnimationComplete(*a) {
		*a = Animation{}
	}
}

// GetAnimationFrame returns the current frame for an animation
func GetAnimationFrame(anim Animation) string {
	frames := AnimationFrames[anim.Type]
	if len(frames) == 0 {
		return ""
	}
	if anim.Frame >= len(frames) {
		return frames[len(frames)-1]
	}
	return frames[anim.Frame]
}

// IsAnimationComplete returns true if the animation has finished
func IsAnimationComplete(anim Animation) bool {
	frames := AnimationFrames[anim.Type]
	return anim.Frame >= len(frames)
}

// AnimationTotalFrames returns the number of frames for an animation type
func AnimationTotalFrames(animType AnimationType) int {
	return len(AnimationFrames[animType])
}
