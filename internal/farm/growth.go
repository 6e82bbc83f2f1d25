package farm

// Progress thresholds, as a fraction of the crop's growth days.
const (
	SproutThreshold  = 0.33
	GrowingThreshold = 0.66
	RipeThreshold    = 1.0
)

// AdvanceCrop applies one night of growth. A crop grows only when its soil was
// watered or it rained; otherwise it is returned unchanged. Growth never
// moves a crop backwards and never touches a dead crop.
func AdvanceCrop(c Crop, spec CropSpec, wasWatered, isRaining bool) Crop {
	if c.Dead() || !(wasWatered || isRaining) {
		return c
	}

	c.DaysWatered++

	growthDays := spec.GrowthDays
	if growthDays < 1 {
		growthDays = 1
	}
	progress := float64(c.DaysWatered) / float64(growthDays)

	next := c.State
	switch {
	case progress >= RipeThreshold:
		next = StateRipe
	case progress >= GrowingThreshold:
		next = StateGrowing
	case progress >= SproutThreshold:
		next = StateSprout
	}
	if next > c.State {
		c.State = next
	}
	return c
}
