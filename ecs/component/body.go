package component

import "github.com/milk9111/locomotion/mover"

type Body struct {
	Mover mover.Mover
}

var BodyComponent = NewComponent[Body]()
