package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer every garden entity lives on.
const Default ecs.LayerID = iota
