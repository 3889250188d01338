package locomotion

import (
	"locomotion/internal/engine"
)

// AnchorLink ties the actor to a grabbed object through a connection
// object, so the actor rides along when the grabbed object moves.
type AnchorLink struct {
	actor      *engine.GameObject
	anchor     *engine.GameObject
	connection *engine.GameObject
}

// Attach places a connection object at anchor and parents actor to it
// without moving actor in world space. An existing link is dropped first.
func (a *AnchorLink) Attach(actor, anchor *engine.GameObject) {
	if actor == nil || anchor == nil {
		return
	}
	a.Detach()
	conn := engine.NewGameObject(anchor.Name + "_connection")
	conn.Transform.Position = anchor.WorldPosition()
	actor.SetParentKeepWorld(conn)
	a.actor, a.anchor, a.connection = actor, anchor, conn
}

// Follow snaps the connection to the anchor's current world position.
func (a *AnchorLink) Follow() {
	if a.connection == nil {
		return
	}
	a.connection.Transform.Position = a.anchor.WorldPosition()
}

// Detach unparents the actor, keeping its world position.
func (a *AnchorLink) Detach() {
	if a.connection == nil {
		return
	}
	if a.actor.Parent == a.connection {
		a.actor.SetParentKeepWorld(nil)
	}
	a.actor, a.anchor, a.connection = nil, nil, nil
}

func (a *AnchorLink) Active() bool { return a.connection != nil }

// Connection is the intermediate parent while attached.
func (a *AnchorLink) Connection() *engine.GameObject { return a.connection }
