package transforms

// Integer sample depths supported by the frame contract.
const (
	bitDepth8  = 8
	bitDepth16 = 16
)

// displayGamma22 is the exponent of the conventional display power-law
// curve selected by CurveGamma22.
const displayGamma22 = 2.2
