package models

import "fmt"

// Strategy selects a thresholding algorithm.
type Strategy int

const (
	StrategyOtsu Strategy = iota
	StrategyKapur
	StrategySauvola
	StrategyWolf
	StrategyBernsen
)

var strategyNames = map[Strategy]string{
	StrategyOtsu:    "otsu",
	StrategyKapur:   "kapur",
	StrategySauvola: "sauvola",
	StrategyWolf:    "wolf",
	StrategyBernsen: "bernsen",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy maps a name to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown threshold strategy: %q", name)
}

// Strategies lists all selectable strategies in declaration order.
func Strategies() []Strategy {
	return []Strategy{StrategyOtsu, StrategyKapur, StrategySauvola, StrategyWolf, StrategyBernsen}
}

// ScaleMode selects how a mask is fitted into the target region.
type ScaleMode int

const (
	// ScaleStretch resamples to the exact region size, ignoring aspect
	// ratio.
	ScaleStretch ScaleMode = iota
	// ScaleFit scales uniformly so the whole mask fits, padding the
	// remainder.
	ScaleFit
	// ScaleFill scales uniformly so the whole region is covered,
	// cropping the overflow.
	ScaleFill
	// ScaleCenter pastes the mask at native resolution, centered.
	ScaleCenter
	// ScaleTile repeats the mask in both directions.
	ScaleTile
)

var scaleModeNames = map[ScaleMode]string{
	ScaleStretch: "stretch",
	ScaleFit:     "fit",
	ScaleFill:    "fill",
	ScaleCenter:  "center",
	ScaleTile:    "tile",
}

func (m ScaleMode) String() string {
	if name, ok := scaleModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseScaleMode maps a name to its ScaleMode.
func ParseScaleMode(name string) (ScaleMode, error) {
	for m, n := range scaleModeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown scaling mode: %q", name)
}

// Accuracy trades drawing fidelity against point count. It is threaded
// explicitly into the sampling stage, never held as ambient state.
type Accuracy int

const (
	AccuracyFast Accuracy = iota
	AccuracyBalanced
	AccuracyAccurate
)

// Stride returns the pixel step used when sampling foreground points
// from the scaled mask.
func (a Accuracy) Stride() int {
	switch a {
	case AccuracyFast:
		return 3
	case AccuracyBalanced:
		return 2
	default:
		return 1
	}
}

func (a Accuracy) String() string {
	switch a {
	case AccuracyFast:
		return "fast"
	case AccuracyBalanced:
		return "balanced"
	case AccuracyAccurate:
		return "accurate"
	}
	return fmt.Sprintf("accuracy(%d)", int(a))
}

// ParseAccuracy maps a name to its Accuracy.
func ParseAccuracy(name string) (Accuracy, error) {
	switch name {
	case "fast":
		return AccuracyFast, nil
	case "balanced":
		return AccuracyBalanced, nil
	case "accurate":
		return AccuracyAccurate, nil
	}
	return 0, fmt.Errorf("unknown accuracy: %q", name)
}
