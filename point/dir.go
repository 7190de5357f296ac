package point

// Unit directions; Y grows downward.
var (
	Up    = Point{0, -1}
	Down  = Point{0, 1}
	Left  = Point{-1, 0}
	Right = Point{1, 0}

	UpRight   = Point{1, -1}
	UpLeft    = Point{-1, -1}
	DownRight = Point{1, 1}
	DownLeft  = Point{-1, 1}
)

// Ortho holds the four axis-aligned unit directions.
var Ortho = [4]Point{Up, Left, Down, Right}

// Diag holds the four corner-aligned unit directions.
var Diag = [4]Point{UpRight, UpLeft, DownRight, DownLeft}

// OrthoDiag interleaves Ortho and Diag, starting from Up.
var OrthoDiag = [8]Point{
	Up, Diag[0],
	Left, Diag[1],
	Down, Diag[2],
	Right, Diag[3],
}
