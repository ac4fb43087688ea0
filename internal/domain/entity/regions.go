package entity

// Atlas keys and region names. Code refers to these instead of the string
// names directly so the packs can be swapped around.
const (
	NormalPack = "NormalPack"

	Tree1     = "tree1"
	Tree2     = "tree2"
	HeroIdle  = "adventurer_stand"
	BlankQuad = "blank-quad"

	HeroWalkingPack = "HeroWalkingPack"

	// HeroWalking is the animation prefix; frames are HeroWalking_0, _1, ...
	HeroWalking = "adventurer_walk"
)
