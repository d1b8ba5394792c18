// Command chroma-convert demonstrates 4:4:4 to 4:2:2 chroma conversion on a
// synthetic step-edge frame and prints plane statistics for each
// configuration, making filter sharpness and overshoot behavior visible.
package main

import (
	"flag"
	"fmt"
	"log"

	"gonum.org/v1/gonum/stat"

	transforms "github.com/openhdr/go-pixel-transforms"
)

func main() {
	// Command-line flags
	var (
		width     = flag.Int("width", defaultWidth, "Frame width in pixels (must be even)")
		height    = flag.Int("height", defaultHeight, "Frame height in pixels")
		method    = flag.String("method", "box", "Filter method: box, tent, mpeg2, sinc")
		siting    = flag.Int("siting", 0, "Chroma siting value (0-5)")
		overshoot = flag.Int("overshoot", 0, "Overshoot control mode (0-3)")
		curveName = flag.String("curve", "", "Optional transfer curve applied to luma first: linear, st240, gamma22, pq")
		parallel  = flag.Bool("parallel", false, "Filter chroma planes concurrently")
	)
	flag.Parse()

	config := &transforms.Config{
		Method:         parseMethod(*method),
		LocationTop:    transforms.ChromaLocation(*siting),
		Overshoot:      transforms.OvershootMode(*overshoot),
		EnableParallel: *parallel,
	}

	conv, err := transforms.New444to422(config)
	if err != nil {
		log.Fatalf("Failed to create converter: %v", err)
	}

	in, err := transforms.NewFloatFrame(*width, *height, transforms.ChromaFormat444)
	if err != nil {
		log.Fatalf("Failed to allocate input frame: %v", err)
	}
	out, err := transforms.NewFloatFrame(*width, *height, transforms.ChromaFormat422)
	if err != nil {
		log.Fatalf("Failed to allocate output frame: %v", err)
	}

	fillStepEdge(in)

	if *curveName != "" {
		tf, err := transforms.NewTransferFunction(parseCurve(*curveName))
		if err != nil {
			log.Fatalf("Failed to create transfer function: %v", err)
		}
		transforms.ApplyForward(tf, in.FloatComp[transforms.CompY], in.FloatComp[transforms.CompY])
	}

	if err := conv.Process(out, in); err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	fmt.Printf("Converted %dx%d 4:4:4 -> 4:2:2 (method=%s siting=%d overshoot=%d)\n",
		*width, *height, *method, *siting, *overshoot)
	printPlaneStats("Y", out.FloatComp[transforms.CompY])
	printPlaneStats("U", out.FloatComp[transforms.CompU])
	printPlaneStats("V", out.FloatComp[transforms.CompV])
}

// fillStepEdge writes a flat luma field and a hard horizontal chroma step
// edge, the worst case for ringing filters.
func fillStepEdge(f *transforms.Frame) {
	for c := transforms.CompY; c <= transforms.CompV; c++ {
		width := f.Width[c]
		edge := int(float64(width) * stepEdgeFraction)
		for j := 0; j < f.Height[c]; j++ {
			for i := 0; i < width; i++ {
				v := float32(lowLevel)
				if c != transforms.CompY && i >= edge {
					v = highLevel
				}
				f.FloatComp[c][j*width+i] = v
			}
		}
	}
	f.IsAvailable = true
}

// printPlaneStats reports mean, standard deviation and min/max of a plane.
func printPlaneStats(name string, plane []float32) {
	data := make([]float64, len(plane))
	lo, hi := float64(plane[0]), float64(plane[0])
	for i, v := range plane {
		data[i] = float64(v)
		if data[i] < lo {
			lo = data[i]
		}
		if data[i] > hi {
			hi = data[i]
		}
	}

	mean, std := stat.MeanStdDev(data, nil)
	fmt.Printf("  %s: mean=%.6f stddev=%.6f min=%.6f max=%.6f\n", name, mean, std, lo, hi)
}

// parseMethod converts a method name to its enum value.
func parseMethod(name string) transforms.FilterMethod {
	switch name {
	case "box":
		return transforms.MethodBox
	case "tent":
		return transforms.MethodTent
	case "mpeg2":
		return transforms.MethodMPEG2
	case "sinc":
		return transforms.MethodWindowedSinc
	default:
		log.Fatalf("Unknown filter method: %s", name)
		return transforms.MethodBox
	}
}

// parseCurve converts a curve name to its enum value.
func parseCurve(name string) transforms.CurveID {
	switch name {
	case "linear":
		return transforms.CurveLinear
	case "st240":
		return transforms.CurveST240
	case "gamma22":
		return transforms.CurveGamma22
	case "pq":
		return transforms.CurvePQ
	default:
		log.Fatalf("Unknown curve: %s", name)
		return transforms.CurveLinear
	}
}
