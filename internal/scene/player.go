package scene

import "github.com/vovakirdan/tui-sketch/internal/canvas"

// Player is the keyboard-driven sprite: an animated bitmap with a velocity
// integrated every tick. It composes a Sprite by containment and forwards
// the capabilities it shares with it.
type Player struct {
	sprite *Sprite
	Vx, Vy float64
	Speed  float64
}

// NewPlayer wraps a sprite with movement state.
func NewPlayer(sprite *Sprite, speed float64) *Player {
	return &Player{sprite: sprite, Speed: speed}
}

// Sprite exposes the underlying sprite.
func (p *Player) Sprite() *Sprite {
	return p.sprite
}

// SetVelocity sets the direction vector; it is scaled by Speed during
// Update. The vector is not normalized, matching the demo's diagonal
// speedup.
func (p *Player) SetVelocity(vx, vy float64) {
	p.Vx = vx
	p.Vy = vy
}

// Update integrates position at the current velocity, then advances the
// sprite animation.
func (p *Player) Update(dt float64) {
	p.sprite.Translate(p.Vx*p.Speed*dt, p.Vy*p.Speed*dt)
	p.sprite.Animate(dt)
}

// Draw renders the sprite's current frame.
func (p *Player) Draw(dst canvas.PixelSetter) {
	p.sprite.Draw(dst)
}

// Translate moves the player.
func (p *Player) Translate(dx, dy float64) { p.sprite.Translate(dx, dy) }

// Rotate turns the player sprite about its center by degrees.
func (p *Player) Rotate(deg float64) { p.sprite.Rotate(deg) }

// Scale multiplies the player sprite's scale factors.
func (p *Player) Scale(sx, sy float64) { p.sprite.Scale(sx, sy) }

var (
	_ Drawable      = (*Player)(nil)
	_ Updatable     = (*Player)(nil)
	_ Transformable = (*Player)(nil)
)
