package component

type BallTag struct{}

var BallTagComponent = NewComponent[BallTag]()

type PivotTag struct{}

var PivotTagComponent = NewComponent[PivotTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type BlockTag struct{}

var BlockTagComponent = NewComponent[BlockTag]()
