// Package canvasutils is a small sprite and group toolkit for [Ebitengine]
// games: rectangles with named anchor points and collision tests, sprites that
// know which groups hold them, and groups that update and draw their members.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop around a [Scene]:
//
//	scene := canvasutils.NewScene()
//	enemies := canvasutils.NewGroup("enemies")
//	scene.AddLayer(enemies)
//	// ... add sprites ...
//	canvasutils.Run(scene, canvasutils.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call [Group.Update]
// and [Group.Draw] directly:
//
//	func (g *Game) Update() error        { g.enemies.Update(nil); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.enemies.Draw(s) }
//
// # Rectangles
//
// [Rect] stores only X, Y, Width and Height. Anchors such as [Rect.Center],
// [Rect.MidBottom] or [Rect.TopRight] are computed on read, and their setters
// move the rectangle so the anchor lands on the given point, truncating toward
// zero:
//
//	r := canvasutils.NewRect(0, 0, 32, 48)
//	r.SetMidBottom(canvasutils.Vec2{X: 160, Y: 240}) // feet on the ground
//
// [Rect.CollidePoint] includes the edges; [Rect.CollideRect] does not, so two
// rectangles that only touch do not collide.
//
// # Sprites and groups
//
// A [Sprite] is an image drawn at its rectangle's top-left corner. A [Group]
// holds any number of sprites in insertion order; a [GroupSingle] holds at
// most one. A sprite may belong to many containers at once and tracks them all,
// so [Sprite.Kill] removes it everywhere:
//
//	bullet := canvasutils.NewSprite("bullet", img, rect, bullets, everything)
//	// ...
//	bullet.Kill() // gone from bullets and everything
//
// Game objects embed *Sprite and override Update. Add the embedding value to
// groups so the override runs.
//
// Two operations intentionally leave back-references behind: [GroupSingle.Add]
// replacing a held sprite, and [Group.Empty]. Their former members keep
// reporting [Sprite.Alive] until killed.
//
// # Extras
//
// [Input] aggregates mouse, touch and keyboard state; [ImageAsset] loads and
// resizes images; [TweenPosition] and friends animate rectangles (via
// [gween]); membership changes can be forwarded to a [Donburi] world through
// the ecs sub-package.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package canvasutils
