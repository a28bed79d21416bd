package scene

// BuiltinA is the first default map: a square box and an open room to the right
func BuiltinA() *Map {
	return &Map{
		Path: "builtin:a",
		Data: &MapData{
			Name:     "Boxes",
			Boundary: true,
			Walls: []WallData{
				{A: PointData{100, 100}, B: PointData{200, 100}},
				{A: PointData{100, 100}, B: PointData{100, 200}},
				{A: PointData{200, 200}, B: PointData{200, 100}},
				{A: PointData{100, 200}, B: PointData{200, 200}},
				{A: PointData{400, 200}, B: PointData{500, 250}},
				{A: PointData{400, 400}, B: PointData{400, 500}},
				{A: PointData{500, 500}, B: PointData{500, 400}},
				{A: PointData{400, 500}, B: PointData{500, 500}},
			},
		},
	}
}

// BuiltinB is the second default map: two long diagonal walls
func BuiltinB() *Map {
	return &Map{
		Path: "builtin:b",
		Data: &MapData{
			Name:     "Diagonals",
			Boundary: true,
			Walls: []WallData{
				{A: PointData{60, 80}, B: PointData{300, 500}},
				{A: PointData{220, 40}, B: PointData{60, 50}},
			},
		},
	}
}
