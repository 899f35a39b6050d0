package island

import (
	"math"
	"strconv"

	"go.uber.org/zap"

	"islandgen/internal/core"
)

// Parameters lists the current tunables grouped by phase.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				int64Param("seed", "Seed", w.cfg.Seed),
				stringParam("noise", "Noise", string(w.cfg.Noise)),
			},
		},
		{
			Name:    "Terrain",
			Summary: "Changes regenerate the whole island.",
			Params: []core.Parameter{
				intParam("size", "Size", params.Size),
				floatParam("noise_scale", "Noise scale", params.NoiseScale),
				floatParam("radial_bias", "Radial bias", params.RadialBias),
				floatParam("threshold", "Land threshold", params.Threshold),
			},
		},
		{
			Name: "Roads",
			Params: []core.Parameter{
				intParam("road_spacing", "Road spacing", params.RoadSpacing),
				intParam("prune_count", "Prune count", params.PruneCount),
			},
		},
		{
			Name: "Zones",
			Params: []core.Parameter{
				intParam("area_count", "Area count", params.AreaCount),
				floatParam("radius_threshold", "Radius threshold", params.RadiusThreshold),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

var islandControls = []core.ParameterControl{
	{Key: "size", Label: "Size", Type: core.ParamTypeInt, Step: 10, Min: MinSize, Max: MaxSize, HasMin: true, HasMax: true},
	{Key: "noise_scale", Label: "Noise scale", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 32, HasMin: true, HasMax: true},
	{Key: "radial_bias", Label: "Radial bias", Type: core.ParamTypeFloat, Step: 0.05, Min: -MaxScore, Max: MaxScore, HasMin: true, HasMax: true},
	{Key: "threshold", Label: "Land threshold", Type: core.ParamTypeFloat, Step: 0.05, Min: -MaxScore, Max: MaxScore, HasMin: true, HasMax: true},
	{Key: "road_spacing", Label: "Road spacing", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 50, HasMin: true, HasMax: true},
	{Key: "prune_count", Label: "Prune count", Type: core.ParamTypeInt, Step: 10, Min: 0, HasMin: true},
	{Key: "area_count", Label: "Area count", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 64, HasMin: true, HasMax: true},
	{Key: "radius_threshold", Label: "Radius threshold", Type: core.ParamTypeFloat, Step: 0.05, Min: -MaxScore, Max: MaxScore, HasMin: true, HasMax: true},
}

// ParameterControls exposes the HUD-adjustable tunables.
func (w *World) ParameterControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), islandControls...)
}

type stage int

const (
	stageTerrain stage = iota
	stageLayout
)

// SetIntParameter clamps and applies an integer tunable, then regenerates the
// affected phases. It reports false for unknown keys.
func (w *World) SetIntParameter(key string, value int) bool {
	ctrl, ok := controlFor(key, core.ParamTypeInt)
	if !ok {
		return false
	}
	v := int(math.Round(ctrl.Clamp(float64(value))))
	next := w.cfg.Params
	from := stageLayout
	switch key {
	case "size":
		next.Size = v
		from = stageTerrain
	case "road_spacing":
		next.RoadSpacing = v
	case "prune_count":
		next.PruneCount = v
	case "area_count":
		next.AreaCount = v
	}
	return w.apply(next, from)
}

// SetFloatParameter clamps and applies a floating point tunable.
func (w *World) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := controlFor(key, core.ParamTypeFloat)
	if !ok || math.IsNaN(value) {
		return false
	}
	v := ctrl.Clamp(value)
	next := w.cfg.Params
	from := stageTerrain
	switch key {
	case "noise_scale":
		next.NoiseScale = v
	case "radial_bias":
		next.RadialBias = v
	case "threshold":
		next.Threshold = v
	case "radius_threshold":
		next.RadiusThreshold = v
		from = stageLayout
	}
	return w.apply(next, from)
}

func (w *World) apply(next Params, from stage) bool {
	if err := next.Validate(); err != nil {
		w.log.Warn("rejected parameter change", zap.Error(err))
		return false
	}
	w.cfg.Params = next
	if w.model == nil {
		return true
	}
	var err error
	if from == stageTerrain {
		_, err = w.Generate()
	} else {
		err = w.Relayout()
	}
	if err != nil {
		w.log.Error("regenerate after parameter change", zap.Error(err))
	}
	return true
}

func controlFor(key string, typ core.ParamType) (core.ParameterControl, bool) {
	for _, c := range islandControls {
		if c.Key == key && c.Type == typ {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
