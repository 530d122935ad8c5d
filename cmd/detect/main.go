// Command detect runs text-region detection over image files or directories
// and prints one JSON result per image.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	textdetect "github.com/nvr-ai/go-textdetect"
	"github.com/nvr-ai/go-textdetect/detector"
	"github.com/nvr-ai/go-textdetect/images"
	"github.com/nvr-ai/go-textdetect/util"
)

// imageResult is the JSON record emitted per input image.
type imageResult struct {
	Path    string            `json:"path"`
	Width   int               `json:"width"`
	Height  int               `json:"height"`
	Regions []detector.Region `json:"regions"`
}

func main() {
	var (
		modelPath    string
		accelerators string
		maxSide      int
		unclipRatio  float64
		boxThreshold float64
		maskThresh   float64
		invert       bool
		gamma        bool
		rotate       bool
		autoRotate   bool
		verbose      bool
	)
	flag.StringVar(&modelPath, "model", textdetect.DefaultModelPath, "Path to the detection model file")
	flag.StringVar(&accelerators, "accelerators", "", "Comma-separated accelerator preference (cuda,tensorrt,directml,coreml,openvino)")
	flag.IntVar(&maxSide, "max-side", 2048, "Longer edge of the resized working image")
	flag.Float64Var(&unclipRatio, "unclip-ratio", 2.3, "Polygon expansion ratio")
	flag.Float64Var(&boxThreshold, "box-threshold", 0.7, "Minimum mean box probability")
	flag.Float64Var(&maskThresh, "mask-threshold", 0.5, "Probability map binarization threshold")
	flag.BoolVar(&invert, "invert", false, "Invert colors before detection")
	flag.BoolVar(&gamma, "gamma", false, "Apply automatic gamma correction")
	flag.BoolVar(&rotate, "rotate", false, "Detect on the image rotated 90 degrees clockwise")
	flag.BoolVar(&autoRotate, "auto-rotate", false, "Rerun rotated when the first pass finds mostly vertical text")
	flag.BoolVar(&verbose, "v", false, "Enable debug logging")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: detect [flags] <image-or-directory> ...")
	}
	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	var prefs []string
	if accelerators != "" {
		prefs = strings.Split(accelerators, ",")
	}

	session := textdetect.NewSession(textdetect.SessionConfig{
		Accelerators: prefs,
		ModelPath:    modelPath,
	})
	det := session.DefaultDetector()
	if err := det.Load(); err != nil {
		log.Fatalf("loading detector: %v", err)
	}
	defer func() {
		if err := det.Unload(); err != nil {
			log.Printf("unloading detector: %v", err)
		}
	}()

	pre := detector.PreprocessOptions{
		Invert:       invert,
		GammaCorrect: gamma,
		Rotate:       rotate,
		AutoRotate:   autoRotate,
	}
	decode := detector.DefaultDecodeOptions()
	decode.MaxSideLen = maxSide
	decode.UnclipRatio = unclipRatio
	decode.BoxScoreThreshold = boxThreshold
	decode.MaskThreshold = maskThresh

	encoder := json.NewEncoder(os.Stdout)
	failures := 0
	for _, arg := range flag.Args() {
		paths, err := util.CollectImagePaths(arg)
		if err != nil {
			log.Printf("reading %s: %v", arg, err)
			failures++
			continue
		}
		for _, path := range paths {
			if err := processImage(encoder, det, path, pre, decode); err != nil {
				log.Printf("processing %s: %v", path, err)
				failures++
			}
		}
	}
	if failures > 0 {
		os.Exit(1)
	}
}

func processImage(
	encoder *json.Encoder,
	det *detector.Detector,
	path string,
	pre detector.PreprocessOptions,
	decode detector.DecodeOptions,
) error {
	img, err := images.FromFile(path)
	if err != nil {
		return err
	}
	result, err := det.Detect(img, pre, decode)
	if err != nil {
		return err
	}
	return encoder.Encode(imageResult{
		Path:    path,
		Width:   img.Width(),
		Height:  img.Height(),
		Regions: result.Regions,
	})
}
